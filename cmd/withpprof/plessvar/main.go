// Command plessvar is an alternative main program of plessvar that supports
// writing pprof profiles.
package main

import (
	"os"

	"src.pless.dev/pkg/buildinfo"
	"src.pless.dev/pkg/pprof"
	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/rpc"
	"src.pless.dev/pkg/varprog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&pprof.Program{}, &buildinfo.Program{}, &rpc.Program{}, &varprog.Program{})))
}

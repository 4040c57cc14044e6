// Plessvar converts, compares and formats tagged variant values, and manages a
// store of named property bags holding them. With -rpc it serves the same
// operations over JSON-RPC on stdin and stdout.
package main

import (
	"os"

	"src.pless.dev/pkg/buildinfo"
	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/rpc"
	"src.pless.dev/pkg/varprog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &rpc.Program{}, &varprog.Program{})))
}

// Package varprog implements the default subprogram of plessvar: converting,
// comparing and formatting variants given on the command line, and managing
// the property store.
package varprog

import (
	"fmt"
	"os"

	"src.pless.dev/pkg/logutil"
	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/sys"
	"src.pless.dev/pkg/variant"
)

var logger = logutil.GetLogger("[varprog] ")

// Program is the varprog subprogram. It always runs, so it should be the last
// in a Composite.
type Program struct {
	from, to, format string
	compare, props   bool
	table            bool

	json     *bool
	db       *prog.DBPath
	settings *prog.Settings
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.from, "from", "String", "type the arguments are parsed as")
	fs.StringVar(&p.to, "to", "", "type to convert the arguments to; defaults to -from")
	fs.StringVar(&p.format, "format", "", "format string for the output values")
	fs.BoolVar(&p.compare, "compare", false, "compare two values instead of converting")
	fs.BoolVar(&p.props, "props", false, "run a property store command: get, set, del, list, bags, export or import")
	fs.BoolVar(&p.table, "table", false, "print an aligned table even when stdout is not a terminal")
	p.json = fs.JSON()
	p.db = fs.DB()
	p.settings = fs.Settings()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	switch {
	case p.compare && p.props:
		return prog.BadUsage("-compare and -props are mutually exclusive")
	case p.compare:
		return p.runCompare(fds, args)
	case p.props:
		return p.runProps(fds, args)
	}
	return p.runConvert(fds, args)
}

func (p *Program) provider() variant.FormatProvider { return p.settings.Provider }

// formatString returns the -format flag, or the format of the configuration.
func (p *Program) formatString() string {
	if p.format != "" {
		return p.format
	}
	return p.settings.Config.Format
}

// output returns how rows are written to stdout.
func (p *Program) output(out *os.File) rowWriter {
	if p.table || p.settings.Config.Table || sys.IsATTY(out) {
		return tableWriter{sys.Columns(out, maxTableWidth)}
	}
	return tsvWriter{}
}

// parse converts a command-line argument to a variant of the given tag, using
// the culture for parsing.
func (p *Program) parse(tag variant.Tag, arg string) (variant.Variant, error) {
	return variant.FromString(arg).ConvertTo(tag, p.provider())
}

func parseTag(flag, name string) (variant.Tag, error) {
	tag, err := variant.ParseTag(name)
	if err != nil {
		return 0, prog.BadUsage(fmt.Sprintf("-%s: %v", flag, err))
	}
	return tag, nil
}

package varprog

import (
	"fmt"
	"os"

	"src.pless.dev/pkg/prog"
)

func (p *Program) runConvert(fds [3]*os.File, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no values given")
	}
	from, err := parseTag("from", p.from)
	if err != nil {
		return err
	}
	to := from
	if p.to != "" {
		if to, err = parseTag("to", p.to); err != nil {
			return err
		}
	}
	format := p.formatString()

	var rows [][]string
	failed := false
	for _, arg := range args {
		v, err := p.parse(from, arg)
		if err == nil {
			v, err = v.ConvertTo(to, p.provider())
		}
		var text string
		if err == nil {
			text, err = v.FormatStringWith(format, p.provider())
		}
		if err != nil {
			logger.Printf("converting %q from %s to %s: %v", arg, from, to, err)
			fmt.Fprintf(fds[2], "%s: %v\n", arg, err)
			failed = true
			continue
		}
		rows = append(rows, []string{arg, v.Tag().String(), text})
	}
	if len(rows) > 0 {
		err := p.output(fds[1]).writeRows(fds[1], []string{"INPUT", "TYPE", "VALUE"}, rows)
		if err != nil {
			return err
		}
	}
	if failed {
		return prog.Exit(1)
	}
	return nil
}

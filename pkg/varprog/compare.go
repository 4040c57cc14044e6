package varprog

import (
	"encoding/json"
	"fmt"
	"os"

	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/variant"
)

type compareResult struct {
	Compare *int   `json:"compare"`
	Equal   bool   `json:"equal"`
	Error   string `json:"error,omitempty"`
}

// runCompare parses two values and prints how they order and whether they
// are equal. A failed comparison still prints the equality, and exits with 1.
func (p *Program) runCompare(fds [3]*os.File, args []string) error {
	if len(args) != 2 {
		return prog.BadUsage("-compare takes exactly two values")
	}
	from, err := parseTag("from", p.from)
	if err != nil {
		return err
	}
	var vs [2]variant.Variant
	for i, arg := range args {
		if vs[i], err = p.parse(from, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	if p.to != "" {
		to, err := parseTag("to", p.to)
		if err != nil {
			return err
		}
		for i := range vs {
			if vs[i], err = vs[i].ConvertTo(to, p.provider()); err != nil {
				return fmt.Errorf("%s: %w", args[i], err)
			}
		}
	}

	var result compareResult
	c, cmpErr := variant.Compare(vs[0], vs[1])
	if cmpErr == nil {
		c = sign(c)
		result.Compare = &c
	} else {
		result.Error = cmpErr.Error()
	}
	result.Equal = variant.Equal(vs[0], vs[1])

	if *p.json {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(fds[1], string(data))
	} else {
		if result.Compare != nil {
			fmt.Fprintln(fds[1], "compare:", *result.Compare)
		} else {
			fmt.Fprintln(fds[2], "compare:", result.Error)
		}
		fmt.Fprintln(fds[1], "equal:", result.Equal)
	}
	if cmpErr != nil {
		return prog.Exit(1)
	}
	return nil
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

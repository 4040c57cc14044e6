package varprog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/props"
	"src.pless.dev/pkg/rpc"
	"src.pless.dev/pkg/store"
	"src.pless.dev/pkg/store/storedefs"
	"src.pless.dev/pkg/variant"
)

type propsCommand struct {
	name  string
	nargs int
	usage string
	run   func(p *Program, fds [3]*os.File, st storedefs.Store, args []string) error
}

var propsCommands = []propsCommand{
	{"get", 2, "get BAG NAME", (*Program).propsGet},
	{"set", -1, "set BAG NAME TYPE [TEXT]", (*Program).propsSet},
	{"del", 2, "del BAG NAME", (*Program).propsDel},
	{"list", 1, "list BAG", (*Program).propsList},
	{"bags", 0, "bags", (*Program).propsBags},
	{"export", 1, "export BAG", (*Program).propsExport},
	{"import", 2, "import BAG FILE", (*Program).propsImport},
}

func (p *Program) runProps(fds [3]*os.File, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("-props needs a command")
	}
	var cmd *propsCommand
	for i := range propsCommands {
		if propsCommands[i].name == args[0] {
			cmd = &propsCommands[i]
		}
	}
	if cmd == nil {
		return prog.BadUsage("unknown -props command " + args[0])
	}
	args = args[1:]
	if cmd.nargs >= 0 && len(args) != cmd.nargs || cmd.nargs < 0 && len(args) != 3 && len(args) != 4 {
		return prog.BadUsage("usage: -props " + cmd.usage)
	}

	path, err := p.db.Path()
	if err != nil {
		return err
	}
	st, err := store.NewStore(path)
	if err != nil {
		return fmt.Errorf("cannot open property store: %w", err)
	}
	defer st.Close()
	return cmd.run(p, fds, st, args)
}

func (p *Program) propsGet(fds [3]*os.File, st storedefs.Store, args []string) error {
	v, err := st.Get(args[0], args[1])
	if err != nil {
		return err
	}
	if *p.json {
		return p.writeJSON(fds[1], v)
	}
	text, err := v.FormatStringWith(p.formatString(), p.provider())
	if err != nil {
		return err
	}
	return p.output(fds[1]).writeRows(fds[1], []string{"TYPE", "VALUE"},
		[][]string{{v.Tag().String(), text}})
}

func (p *Program) propsSet(fds [3]*os.File, st storedefs.Store, args []string) error {
	tag, err := variant.ParseTag(args[2])
	if err != nil {
		return prog.BadUsage(err.Error())
	}
	var v variant.Variant
	switch {
	case len(args) == 4:
		v, err = p.parse(tag, args[3])
		if err != nil {
			return err
		}
	case tag == variant.Empty || tag == variant.DBNull:
		v, _ = variant.ParseText(tag, "")
	case tag == variant.String:
		v = variant.NullString()
	default:
		return prog.BadUsage("usage: -props set BAG NAME TYPE TEXT")
	}
	logger.Printf("setting %s/%s to %s %q", args[0], args[1], v.Tag(), v)
	return st.Put(args[0], args[1], v)
}

func (p *Program) propsDel(fds [3]*os.File, st storedefs.Store, args []string) error {
	return st.Delete(args[0], args[1])
}

func (p *Program) propsList(fds [3]*os.File, st storedefs.Store, args []string) error {
	b, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if *p.json {
		return p.writeJSON(fds[1], b)
	}
	var rows [][]string
	format := p.formatString()
	for _, name := range b.Names() {
		v, _ := b.Get(name)
		text, err := v.FormatStringWith(format, p.provider())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rows = append(rows, []string{name, v.Tag().String(), text})
	}
	return p.output(fds[1]).writeRows(fds[1], []string{"NAME", "TYPE", "VALUE"}, rows)
}

func (p *Program) propsBags(fds [3]*os.File, st storedefs.Store, _ []string) error {
	bags, err := st.Bags()
	if err != nil {
		return err
	}
	if *p.json {
		if bags == nil {
			bags = []string{}
		}
		return json.NewEncoder(fds[1]).Encode(bags)
	}
	for _, bag := range bags {
		fmt.Fprintln(fds[1], bag)
	}
	return nil
}

func (p *Program) propsExport(fds [3]*os.File, st storedefs.Store, args []string) error {
	b, err := st.Load(args[0])
	if err != nil {
		return err
	}
	data, err := props.MarshalBag(b)
	if err != nil {
		return err
	}
	_, err = fds[1].Write(data)
	return err
}

// propsImport replaces a bag with the content of a YAML file, or of stdin if
// the file is "-".
func (p *Program) propsImport(fds [3]*os.File, st storedefs.Store, args []string) error {
	var data []byte
	var err error
	if args[1] == "-" {
		data, err = io.ReadAll(fds[0])
	} else {
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return err
	}
	b, err := props.UnmarshalBag(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	logger.Printf("importing %d properties into %s", b.Len(), args[0])
	return st.Save(args[0], b)
}

// writeJSON writes a variant or a bag in the wire form of the RPC service.
func (p *Program) writeJSON(w io.Writer, x any) error {
	var out any
	switch x := x.(type) {
	case variant.Variant:
		value, err := rpc.ToValue(x)
		if err != nil {
			return err
		}
		out = value
	case *props.Bag:
		list := []rpc.Prop{}
		for _, name := range x.Names() {
			v, _ := x.Get(name)
			value, err := rpc.ToValue(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			list = append(list, rpc.Prop{Name: name, Value: value})
		}
		out = list
	}
	return json.NewEncoder(w).Encode(out)
}

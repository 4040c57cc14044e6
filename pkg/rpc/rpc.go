// Package rpc implements a JSON-RPC 2.0 service for converting, comparing and
// formatting variants, and for reading and writing property bags.
package rpc

import (
	"context"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"src.pless.dev/pkg/logutil"
	"src.pless.dev/pkg/prog"
	"src.pless.dev/pkg/store"
	"src.pless.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[rpc] ")

// Program is the RPC subprogram.
type Program struct {
	run      bool
	db       *prog.DBPath
	settings *prog.Settings
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "rpc", false, "serve JSON-RPC on stdin and stdout")
	p.db = fs.DB()
	p.settings = fs.Settings()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if !p.run {
		return prog.NextProgram()
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed with -rpc")
	}
	var st storedefs.Store
	if path, err := p.db.Path(); err != nil {
		logger.Println("no property store:", err)
	} else if st, err = store.NewStore(path); err != nil {
		logger.Println("cannot open property store:", err)
	} else {
		defer st.Close()
	}
	Serve(context.Background(), transport{fds[0], fds[1]}, NewServer(p.settings.Provider, st))
	return nil
}

// Serve serves s on rwc, using the header framing of the Language Server
// Protocol. It returns when the connection is closed.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, s *Server) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}),
		s.Handler())
	select {
	case <-conn.DisconnectNotify():
	case <-ctx.Done():
		conn.Close()
	}
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}

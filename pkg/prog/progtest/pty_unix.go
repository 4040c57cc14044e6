//go:build unix

package progtest

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"src.pless.dev/pkg/prog"
)

// RunInPty runs p with stdout connected to a pseudo terminal of the given
// width, and returns the exit status and what the program wrote to the
// terminal, with CRLF line endings turned back into LF. Stdin is empty and stderr is discarded. The test is skipped if no
// pty can be opened.
func RunInPty(t *testing.T, p prog.Program, cols int, args ...string) (int, string) {
	t.Helper()
	IsolateConfig(t)
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: uint16(cols)}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		// Reading fails with EIO once the tty side is closed.
		io.Copy(&buf, ptmx)
		close(done)
	}()

	stdin, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()
	stderr, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer stderr.Close()

	exit := prog.Run([3]*os.File{stdin, tty, stderr}, append([]string{"plessvar"}, args...), p)
	tty.Close()
	<-done
	return exit, strings.ReplaceAll(buf.String(), "\r\n", "\n")
}

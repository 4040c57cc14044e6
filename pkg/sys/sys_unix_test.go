//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
)

func TestPtyIsATTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatal(err)
	}
	if !IsATTY(tty) {
		t.Errorf("IsATTY(tty) = false")
	}
	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize(tty) = %d, %d, want 30, 100", row, col)
	}
	if got := Columns(tty, 42); got != 100 {
		t.Errorf("Columns(tty, 42) = %d, want 100", got)
	}
}

//go:build unix

package varprog_test

import (
	"strings"
	"testing"

	"src.pless.dev/pkg/prog/progtest"
	"src.pless.dev/pkg/varprog"
)

func TestConvert_TerminalTable(t *testing.T) {
	exit, out := progtest.RunInPty(t, &varprog.Program{}, 20,
		"-from", "String", "short", "a rather long input value")
	if exit != 0 {
		t.Fatalf("exit = %d", exit)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "INPUT") || !strings.Contains(lines[1], "short") {
		t.Errorf("unexpected table %q", out)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q is wider than the terminal", line)
		}
	}
}

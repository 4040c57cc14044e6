// Package progtest contains utilities for testing subprograms.
package progtest

import (
	"io"
	"os"
	"slices"
	"strings"
	"testing"

	"src.pless.dev/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args   []string
	stdin  string
	want   result
	checks []func(t *testing.T, r result)
}

type result struct {
	exit           int
	stdout, stderr string
}

// That returns a new Case with the specified CLI arguments. The program name
// is prepended automatically.
//
// The new Case expects the program run to exit with 0 and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test reads like this:
//
//	That("-help").WritesStdoutContaining("Usage:")
func That(args ...string) Case {
	return Case{args: append([]string{"plessvar"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	That("-help").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = s
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	return c.check(func(t *testing.T, r result) {
		if !strings.Contains(r.stdout, s) {
			t.Errorf("got stdout %q, want one containing %q", r.stdout, s)
		}
	}, "stdout")
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = s
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	return c.check(func(t *testing.T, r result) {
		if !strings.Contains(r.stderr, s) {
			t.Errorf("got stderr %q, want one containing %q", r.stderr, s)
		}
	}, "stderr")
}

// check adds a custom check and marks the stream as checked by it, so that
// the exact comparison is skipped.
func (c Case) check(f func(*testing.T, result), stream string) Case {
	c.checks = append(slices.Clone(c.checks), f)
	switch stream {
	case "stdout":
		c.want.stdout = anyOutput
	case "stderr":
		c.want.stderr = anyOutput
	}
	return c
}

const anyOutput = "\x00any"

// Test runs test cases against a given program. Each case runs with the user
// configuration directory pointed at a fresh temporary directory.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			IsolateConfig(t)
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit %v, want %v", r.exit, c.want.exit)
			}
			if c.want.stdout != anyOutput && r.stdout != c.want.stdout {
				t.Errorf("got stdout %q, want %q", r.stdout, c.want.stdout)
			}
			if c.want.stderr != anyOutput && r.stderr != c.want.stderr {
				t.Errorf("got stderr %q, want %q", r.stderr, c.want.stderr)
			}
			for _, check := range c.checks {
				check(t, r)
			}
		})
	}
}

// IsolateConfig points the user configuration directory at a temporary
// directory for the duration of the test.
func IsolateConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
}

// Run runs p with the given arguments and stdin, and returns its exit status
// together with everything it wrote to stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r := run(p, args, stdin)
	return r.exit, r.stdout, r.stderr
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := mustPipe()
	r1, w1 := mustPipe()
	r2, w2 := mustPipe()

	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	stdout := readAllAsync(r1)
	stderr := readAllAsync(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return result{exit, <-stdout, <-stderr}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}

func mustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}

// Package prog supports building testable, composable programs.
//
// The main abstraction of this package is the [Program] interface, which can
// be combined using [Composite]. The entry point of a binary calls [Run] with
// the composite program.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.pless.dev/pkg/config"
	"src.pless.dev/pkg/logutil"
	"src.pless.dev/pkg/variant"
)

// Program represents a subprogram.
type Program interface {
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It returns an error from NextProgram if the
	// subprogram should not run and the next one in a Composite should be
	// tried.
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: plessvar [flags] [args...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags, loads the configuration and runs the
// program. It returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("plessvar", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var configPath, culture, log string
	var help bool
	fs.StringVar(&configPath, "config", "", "path to the configuration file")
	fs.StringVar(&culture, "culture", "", "BCP 47 tag of the culture used for parsing and formatting")
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	pfs := &FlagSet{FlagSet: fs, settings: &Settings{}}
	p.RegisterFlags(pfs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. -help is defined but -h is not, so
			// treat -h like any undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	if log == "" {
		log = cfg.Log
	}
	if log != "" {
		if err := logutil.SetOutputFile(log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if culture != "" {
		cfg.Culture = culture
	}
	provider, err := cfg.Provider()
	if err != nil {
		fmt.Fprintln(fds[2], "bad culture:", err)
		return 2
	}
	*pfs.settings = Settings{Config: cfg, Provider: provider}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if np, ok := err.(nextProgramError); ok {
		// Cleanups that no composite ran.
		np.runCleanups(fds)
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// loadConfig loads the configuration at path. The empty path selects the
// default location, where a missing file is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		return config.Load(defaultPath)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return config.Load(path)
}

// Composite returns a Program made up from other programs. It tries each
// program in turn, until one of them doesn't return an error from
// NextProgram.
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(f *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(f)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	var cleanups []func([3]*os.File)
	for _, p := range cp {
		err := p.Run(fds, args)
		if np, ok := err.(nextProgramError); ok {
			cleanups = append(cleanups, np.cleanups...)
		} else {
			nextProgramError{cleanups}.runCleanups(fds)
			return err
		}
	}
	// If we have reached here, all subprograms have returned NextProgram
	return NextProgram(cleanups...)
}

// NextProgram returns a special error that may be returned by Program.Run
// that is part of a Composite program, indicating that the next program
// should be tried. It can carry cleanup functions, which are run in reverse
// order after the program that finally runs returns.
func NextProgram(cleanups ...func([3]*os.File)) error {
	return nextProgramError{cleanups}
}

type nextProgramError struct{ cleanups []func([3]*os.File) }

// If this error ever gets printed, it has been bubbled to Run and all the
// subprograms have returned NextProgram.
func (e nextProgramError) Error() string { return "internal error: no suitable subprogram" }

func (e nextProgramError) runCleanups(fds [3]*os.File) {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i](fds)
	}
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Settings are the settings shared by all subprograms.
type Settings struct {
	// Config is the loaded configuration, with -culture applied.
	Config *config.Config
	// Provider is the format provider selected by the culture.
	Provider variant.FormatProvider
}

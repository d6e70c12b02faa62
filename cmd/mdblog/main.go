package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates an unrecognized command or argument.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	deps := DefaultDeps()
	if err := run(os.Args, deps); err != nil {
		fmt.Fprintln(deps.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run dispatches to the requested command.
func run(args []string, deps *Dependencies) error {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: no command given", ErrUnknownCommand)
	}

	command := args[1]
	rest := args[2:]

	switch command {
	case "build":
		return runBuild(rest, deps)
	case "init":
		return runInit(rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "mdblog %s\n", Version)
		return nil
	case "help", "--help", "-h":
		runHelp(rest, deps)
		return nil
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the build command.
type buildFlags struct {
	source  string
	output  string
	config  string
	baseURL string
	quiet   bool
	verbose bool
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.source, "source", "s", ".", "source directory")
	fs.StringVarP(&f.output, "output", "o", "public", "output directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.baseURL, "base-url", "b", "", "override the configured base URL")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// initFlags holds all flags for the init command.
type initFlags struct {
	force bool
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.BoolVar(&f.force, "force", false, "overwrite an existing config file")

	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

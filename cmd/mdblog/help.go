package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the static site from a source directory")
	fmt.Fprintln(w, "  init       Scaffold a new site in a directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdblog help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the static site from a source directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --source <dir>      Source directory (default: .)")
	fmt.Fprintln(w, "  -o, --output <dir>      Output directory (default: public)")
	fmt.Fprintln(w, "  -c, --config <path>     Config file path (default: <source>/mdblog.config.yml)")
	fmt.Fprintln(w, "  -b, --base-url <url>    Override the configured base URL")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file detail")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The output directory is removed and rebuilt on every run.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog init [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scaffold a new site: a config file and a sample post.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Target directory (default: .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --force    Overwrite an existing config file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(deps.Stdout)
	case "init":
		printInitUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdblog version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: mdblog help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}

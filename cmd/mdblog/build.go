package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	mdblog "github.com/alnah/go-mdblog"
)

// ErrOutputInsideSource rejects an output directory that the next build's
// scan would pick up again as content.
var ErrOutputInsideSource = errors.New("output directory must be outside the source directory")

// runBuild runs one full site build.
func runBuild(args []string, deps *Dependencies) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUnknownCommand, positional[0])
	}

	if err := checkOutputPath(flags.source, flags.output); err != nil {
		return err
	}

	logger := newLogger(deps, flags.quiet, flags.verbose)

	cfg, err := mdblog.LoadSiteConfig(flags.config, flags.source, logger)
	if err != nil {
		return err
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}

	start := deps.Now()
	gen := mdblog.NewGenerator(cfg, flags.source, mdblog.WithLogger(logger))
	stats, err := gen.Build(flags.output)
	if err != nil {
		return err
	}
	elapsed := deps.Now().Sub(start).Round(time.Millisecond)

	if !flags.quiet {
		printBuildSummary(deps, flags.output, stats, elapsed)
	}
	return nil
}

// newLogger builds the slog text handler for one run. Warnings and errors go
// to stderr; --verbose lowers the level to debug, --quiet raises it to error.
func newLogger(deps *Dependencies, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))
}

// checkOutputPath rejects an output directory equal to or nested inside the
// source directory. Build cleans the output tree, and a nested output would
// be rescanned as static content on the next run.
func checkOutputPath(source, output string) error {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	rel, err := filepath.Rel(absSource, absOutput)
	if err != nil {
		return nil // different volumes, cannot be nested
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: %s", ErrOutputInsideSource, output)
	}
	return nil
}

// printBuildSummary prints the post-build report.
func printBuildSummary(deps *Dependencies, output string, stats *mdblog.BuildStats, elapsed time.Duration) {
	fmt.Fprintf(deps.Stdout, "✓ %d posts, %d pages, %d tags, %d index files\n",
		stats.MarkdownItems, stats.HTMLItems, stats.Tags, stats.IndexPages)
	if stats.Drafts > 0 {
		fmt.Fprintf(deps.Stdout, "  %d drafts skipped\n", stats.Drafts)
	}
	if stats.StaticFiles > 0 {
		fmt.Fprintf(deps.Stdout, "  %d static files copied\n", stats.StaticFiles)
	}
	fmt.Fprintf(deps.Stdout, "  written to %s in %s\n", output, elapsed)
}

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &Dependencies{
		Now:    func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
	}
	return deps, stdout, stderr
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	t.Run("no command prints usage", func(t *testing.T) {
		t.Parallel()
		deps, _, stderr := testDeps()
		err := run([]string{"mdblog"}, deps)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("err = %v, want ErrUnknownCommand", err)
		}
		if !strings.Contains(stderr.String(), "Usage: mdblog") {
			t.Error("usage not printed")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		deps, _, _ := testDeps()
		err := run([]string{"mdblog", "deploy"}, deps)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("err = %v, want ErrUnknownCommand", err)
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		deps, stdout, _ := testDeps()
		if err := run([]string{"mdblog", "version"}, deps); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "mdblog") {
			t.Errorf("version output = %q", stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		deps, stdout, _ := testDeps()
		if err := run([]string{"mdblog", "help"}, deps); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Error("help output missing command list")
		}
	})

	t.Run("help build", func(t *testing.T) {
		t.Parallel()
		deps, stdout, _ := testDeps()
		if err := run([]string{"mdblog", "help", "build"}, deps); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "--source") {
			t.Error("build help missing flags")
		}
	})
}

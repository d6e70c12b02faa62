package main

import (
	"errors"
	"fmt"
	"testing"

	mdblog "github.com/alnah/go-mdblog"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "source not found", err: mdblog.ErrSourceNotFound, want: ExitIO},
		{name: "write failure", err: mdblog.ErrWriteOutput, want: ExitIO},
		{name: "wrapped io error", err: fmt.Errorf("build: %w", mdblog.ErrWriteOutput), want: ExitIO},
		{name: "config not found", err: mdblog.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: mdblog.ErrConfigParse, want: ExitUsage},
		{name: "slug collision", err: mdblog.ErrSlugCollision, want: ExitUsage},
		{name: "unknown command", err: ErrUnknownCommand, want: ExitUsage},
		{name: "output inside source", err: ErrOutputInsideSource, want: ExitUsage},
		{name: "already initialized", err: ErrAlreadyInitialized, want: ExitUsage},
		{name: "unexpected error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

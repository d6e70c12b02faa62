package mdblog_test

import (
	"testing"

	mdblog "github.com/alnah/go-mdblog"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple lowercase", in: "python", want: "python"},
		{name: "uppercase", in: "Python", want: "python"},
		{name: "spaces become hyphens", in: "Machine Learning", want: "machine-learning"},
		{name: "leading and trailing spaces", in: "  go  ", want: "go"},
		{name: "multiple inner spaces collapse", in: "a   b", want: "a-b"},
		{name: "existing hyphens kept", in: "space-grotesk", want: "space-grotesk"},
		{name: "hyphen runs collapse", in: "a--b---c", want: "a-b-c"},
		{name: "c plus plus", in: "C++", want: "c-plus-plus"},
		{name: "c sharp", in: "c#", want: "c-sharp"},
		{name: "dotnet", in: ".NET", want: "dotnet"},
		{name: "f sharp", in: "F#", want: "f-sharp"},
		{name: "diacritics fold", in: "Café", want: "cafe"},
		{name: "punctuation dropped", in: "what's new?", want: "whats-new"},
		{name: "digits kept", in: "HTTP2", want: "http2"},
		{name: "only symbols falls back", in: "???", want: "tag"},
		{name: "empty falls back", in: "", want: "tag"},
		{name: "symbols around word", in: "*go*", want: "go"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := mdblog.Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Python", "C++", "Machine Learning", "Café", "???", "a--b"}
	for _, in := range inputs {
		once := mdblog.Slugify(in)
		twice := mdblog.Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

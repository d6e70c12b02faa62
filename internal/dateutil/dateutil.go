// Package dateutil parses and formats the date values found in frontmatter.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date string that matches no accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// Accepted frontmatter date layouts, tried in order. The canonical form is
// YYYY-MM-DD; the datetime forms appear when YAML authors include a time,
// which is truncated to the day since frontmatter dates are date-granular.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// ParseDate parses a frontmatter date string. The result is truncated to
// midnight: Markdown dates carry date granularity only.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, value)
}

// FormatDisplay renders a timestamp for templates ("January 2, 2006").
// Full datetimes show the day only; time of day is a sorting detail.
func FormatDisplay(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatMachine renders a timestamp for <time datetime="..."> attributes.
func FormatMachine(t time.Time) string {
	return t.Format("2006-01-02")
}

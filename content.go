package mdblog

import (
	"strings"
	"time"
)

// Content kinds. The kind selects the sort-timestamp granularity rule and
// the output-writing path for an item.
const (
	KindMarkdown = "markdown"
	KindHTML     = "html"
)

// Template kinds for markdown items.
const (
	TemplatePost = "post"
	TemplatePage = "page"
)

// Timestamp granularities.
const (
	GranularityDate     = "date"
	GranularityDateTime = "datetime"
)

// Timestamp is a point in time with a declared granularity. Date-only
// timestamps are stored at midnight so they compare directly against full
// datetimes: an HTML page modified at 14:00 on day D sorts newer than a
// Markdown post dated D.
//
// The zero Timestamp means "no date". Undated items sort after every dated
// item in newest-first order. The sentinel is the zero time.Time plus the
// Valid flag, never the build time, so ordering is independent of when the
// build runs.
type Timestamp struct {
	Time        time.Time
	Granularity string
	Valid       bool
}

// DateTimestamp creates a date-granularity Timestamp at midnight of t's day.
func DateTimestamp(t time.Time) Timestamp {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Timestamp{Time: midnight, Granularity: GranularityDate, Valid: true}
}

// DateTimeTimestamp creates a full-datetime Timestamp.
func DateTimeTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Granularity: GranularityDateTime, Valid: true}
}

// Compare orders two timestamps for sorting. It returns a negative value if
// ts sorts older than other, positive if newer, and zero on ties. Invalid
// timestamps compare older than any valid timestamp and equal to each other.
func (ts Timestamp) Compare(other Timestamp) int {
	switch {
	case !ts.Valid && !other.Valid:
		return 0
	case !ts.Valid:
		return -1
	case !other.Valid:
		return 1
	}
	return ts.Time.Compare(other.Time)
}

// Heading is one entry of a markdown item's heading outline.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Item is the normalized representation of one publishable unit, either a
// Markdown post or a standalone HTML page. Items are constructed once during
// the scan/adapt phase and never mutated afterwards; ordering, grouping,
// pagination, and writing only read them.
type Item struct {
	Kind string // KindMarkdown or KindHTML

	// Slug is the output-relative path of the item (e.g. "tutorials/intro.html").
	// It is unique per build; a collision between two items is a fatal
	// configuration error.
	Slug string

	Title       string
	Date        Timestamp
	Update      Timestamp // optional; zero when the item was never updated
	Description string
	Author      string   // opaque; may contain a comma-separated author list
	Tags        []string // insertion order preserved for display

	Draft            bool
	ExcludeFromIndex bool
	Template         string // TemplatePost or TemplatePage

	// Markdown items: rendered body, heading outline, reading time.
	BodyHTML    string
	Headings    []Heading
	TOCOverride *bool // nil = use the global show_toc setting
	ReadingTime int   // minutes

	// HTML items: source bytes, passed through to the output verbatim.
	RawHTML []byte

	SourcePath string
}

// URL returns the item's root-relative URL (leading slash, no base URL).
func (it *Item) URL() string {
	return "/" + it.Slug
}

// Depth returns how many directory levels the item's output file sits below
// the output root.
func (it *Item) Depth() int {
	return strings.Count(it.Slug, "/")
}

// Indexable reports whether the item appears on the main index and in tag
// groups. Drafts are excluded from everything including output files; this
// predicate additionally excludes items marked exclude_from_index, which are
// still written to the output.
func (it *Item) Indexable() bool {
	return !it.Draft && !it.ExcludeFromIndex
}

// SortKey returns the item's effective sort timestamp. When byUpdate is set,
// the update timestamp is used, falling back to the primary date when the
// item was never updated.
func (it *Item) SortKey(byUpdate bool) Timestamp {
	if byUpdate && it.Update.Valid {
		return it.Update
	}
	return it.Date
}

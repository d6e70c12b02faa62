package mdblog

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/render"
)

// wordsPerMinute is the reading speed assumed for reading-time estimates.
const wordsPerMinute = 200

// frontmatterEnvelope mirrors the YAML frontmatter block of a post.
// Dates are decoded as strings and parsed permissively afterwards so that a
// single malformed field degrades to its documented default instead of
// failing the whole file.
type frontmatterEnvelope struct {
	Title            string   `yaml:"title"`
	Date             string   `yaml:"date"`
	Update           string   `yaml:"update"`
	Description      string   `yaml:"description"`
	Author           string   `yaml:"author"`
	Tags             []string `yaml:"tags"`
	Draft            bool     `yaml:"draft"`
	TOC              *bool    `yaml:"toc"` // nil = use the global setting
	ExcludeFromIndex bool     `yaml:"exclude_from_index"`
	Template         string   `yaml:"template"`
}

// AdaptMarkdown converts one Markdown source file into a content Item.
// rel is the file's source-root-relative path; the item's slug is the same
// path with the extension normalized to .html.
//
// Frontmatter fallbacks (warn, never abort): malformed frontmatter yields
// all defaults with the full file as body; a missing title derives from the
// filename; an unparsable date leaves the item undated (sorts last,
// newest-first); an unknown template falls back to "post". A renderer
// failure is fatal and is tagged with the source path.
func AdaptMarkdown(r *render.Renderer, root, rel string, logger *slog.Logger) (*Item, error) {
	srcPath := filepath.Join(root, filepath.FromSlash(rel))
	data, err := os.ReadFile(filepath.Clean(srcPath))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}

	var env frontmatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		logger.Warn("malformed frontmatter, using defaults", "file", rel, "error", err)
		env = frontmatterEnvelope{}
		body = data
	}

	title := strings.TrimSpace(env.Title)
	if title == "" {
		title = fileutil.TitleFromFilename(rel)
	}

	item := &Item{
		Kind:             KindMarkdown,
		Slug:             outputSlug(rel),
		Title:            title,
		Date:             parseFrontmatterDate(env.Date, "date", rel, logger),
		Update:           parseFrontmatterDate(env.Update, "update", rel, logger),
		Description:      env.Description,
		Author:           env.Author,
		Tags:             cleanTags(env.Tags),
		Draft:            env.Draft,
		ExcludeFromIndex: env.ExcludeFromIndex,
		Template:         normalizeTemplate(env.Template, rel, logger),
		TOCOverride:      env.TOC,
		ReadingTime:      readingTime(body),
		SourcePath:       rel,
	}

	result, err := r.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderMarkdown, rel, err)
	}
	item.BodyHTML = result.HTML
	item.Headings = convertHeadings(result.Headings)

	return item, nil
}

// outputSlug maps a source-relative path to its output-relative path with
// the extension normalized to .html.
func outputSlug(rel string) string {
	ext := filepath.Ext(rel)
	return strings.TrimSuffix(rel, ext) + ".html"
}

// parseFrontmatterDate parses an optional date field. Empty means absent;
// unparsable warns and degrades to absent.
func parseFrontmatterDate(value, field, rel string, logger *slog.Logger) Timestamp {
	if strings.TrimSpace(value) == "" {
		return Timestamp{}
	}
	t, err := dateutil.ParseDate(value)
	if err != nil {
		logger.Warn("unparsable date, treating item as undated", "file", rel, "field", field, "value", value)
		return Timestamp{}
	}
	return DateTimestamp(t)
}

// normalizeTemplate validates the template field against the known kinds.
func normalizeTemplate(value, rel string, logger *slog.Logger) string {
	tmpl := strings.ToLower(strings.TrimSpace(value))
	switch tmpl {
	case "":
		return TemplatePost
	case TemplatePost, TemplatePage:
		return tmpl
	default:
		logger.Warn("invalid template, falling back to post", "file", rel, "template", value)
		return TemplatePost
	}
}

// cleanTags trims whitespace and drops empty entries, preserving order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// readingTime estimates minutes to read the body, minimum one minute.
func readingTime(body []byte) int {
	words := len(strings.Fields(string(body)))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// convertHeadings maps renderer headings to the public outline type.
func convertHeadings(hs []render.Heading) []Heading {
	out := make([]Heading, len(hs))
	for i, h := range hs {
		out[i] = Heading{Level: h.Level, ID: h.ID, Text: h.Text}
	}
	return out
}

// Package render converts Markdown to HTML and extracts the heading outline.
// It is the build pipeline's only Markdown boundary; callers never touch
// goldmark directly.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrRender indicates Markdown rendering failed.
var ErrRender = errors.New("markdown rendering failed")

// Heading is one entry of a document's heading outline.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor id assigned by the parser
	Text  string // plain text with inline markup stripped
}

// Result holds a rendered document.
type Result struct {
	HTML     string
	Headings []Heading
}

// Renderer converts Markdown to HTML using goldmark (pure Go).
// A Renderer is safe for reuse across documents.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM extensions, footnotes, auto heading IDs,
// and class-based syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so themes control colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchor ids, required for the TOC
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown source to an HTML fragment and collects the
// heading outline in document order.
func (r *Renderer) Render(source []byte) (*Result, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &Result{
		HTML:     buf.String(),
		Headings: extractHeadings(doc, source),
	}, nil
}

// extractHeadings walks the parsed AST and collects headings with the ids
// assigned by the auto-heading-id parser option.
func extractHeadings(doc gmast.Node, source []byte) []Heading {
	headings := make([]Heading, 0)
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}

		var id string
		if v, found := h.AttributeString("id"); found {
			if b, isBytes := v.([]byte); isBytes {
				id = string(b)
			}
		}

		headings = append(headings, Heading{
			Level: h.Level,
			ID:    id,
			Text:  nodeText(h, source),
		})
		return gmast.WalkContinue, nil
	})
	return headings
}

// nodeText concatenates the text segments beneath a node, dropping inline
// markup such as emphasis or code spans.
func nodeText(node gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(node, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, isText := n.(*gmast.Text); isText {
			sb.Write(t.Segment.Value(source))
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

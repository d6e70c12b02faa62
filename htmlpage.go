package mdblog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-mdblog/internal/fileutil"
)

// AdaptHTML converts one standalone HTML file into a content Item. The file
// is parsed only far enough to extract the first <title> element's text and
// an optional <meta name="description">; its bytes pass through to the
// output verbatim. The sort timestamp is the file's modification time at
// full datetime granularity — the one deliberate granularity asymmetry in
// the content model.
func AdaptHTML(root, rel string) (*Item, error) {
	srcPath := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	data, err := os.ReadFile(filepath.Clean(srcPath))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}

	title, description := extractHTMLMetadata(data)
	if title == "" {
		title = fileutil.TitleFromFilename(rel)
	}

	return &Item{
		Kind:        KindHTML,
		Slug:        outputSlug(rel),
		Title:       title,
		Date:        DateTimeTimestamp(info.ModTime()),
		Description: description,
		Template:    TemplatePage,
		RawHTML:     data,
		SourcePath:  rel,
	}, nil
}

// extractHTMLMetadata pulls the first <title> text and the content of
// <meta name="description"> from an HTML document. The tolerant parser
// never fails on real-world HTML; a document with neither tag yields two
// empty strings.
func extractHTMLMetadata(data []byte) (title, description string) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", ""
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" {
					title = strings.TrimSpace(nodeInnerText(n))
				}
			case "meta":
				if description == "" && strings.EqualFold(getAttr(n, "name"), "description") {
					description = getAttr(n, "content")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, description
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// nodeInnerText concatenates the text content beneath an HTML node.
func nodeInnerText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeInnerText(c))
	}
	return sb.String()
}

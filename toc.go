package mdblog

import (
	"html/template"
	"strings"
)

// Heading levels included in tables of contents: h2 through h4. h1 is the
// post title; deeper levels are noise.
const (
	tocMinLevel = 2
	tocMaxLevel = 4
)

// BuildTOC renders a nested table-of-contents list from a heading outline.
// Returns the empty string when no heading falls within the TOC levels.
func BuildTOC(headings []Heading) string {
	filtered := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level >= tocMinLevel && h.Level <= tocMaxLevel {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="toc" aria-label="Table of contents">` + "\n")
	sb.WriteString(`<ul class="toc-list">` + "\n")

	level := tocMinLevel
	for _, h := range filtered {
		for h.Level > level {
			sb.WriteString("<ul>\n")
			level++
		}
		for h.Level < level {
			sb.WriteString("</ul></li>\n")
			level--
		}
		sb.WriteString(`<li><a href="#` + template.HTMLEscapeString(h.ID) + `">`)
		sb.WriteString(template.HTMLEscapeString(h.Text))
		sb.WriteString("</a>\n")
	}
	for level >= tocMinLevel {
		sb.WriteString("</li></ul>\n")
		level--
	}

	sb.WriteString("</nav>")
	return sb.String()
}

// CountTOCHeadings counts the headings that would appear in the TOC.
func CountTOCHeadings(headings []Heading) int {
	n := 0
	for _, h := range headings {
		if h.Level >= tocMinLevel && h.Level <= tocMaxLevel {
			n++
		}
	}
	return n
}

// ShowTOC decides whether a TOC is rendered for an item. A per-post toc
// override beats the global setting; an explicit enable still honors the
// minimum-heading threshold, since a TOC over one heading helps nobody.
func ShowTOC(item *Item, globalSetting bool, minHeadings int) bool {
	if item.TOCOverride != nil {
		if !*item.TOCOverride {
			return false
		}
		return CountTOCHeadings(item.Headings) >= minHeadings
	}
	if !globalSetting {
		return false
	}
	return CountTOCHeadings(item.Headings) >= minHeadings
}

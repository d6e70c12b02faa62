package mdblog

import "fmt"

// Page is one page of a paginated listing context (the main index or one
// tag's index).
type Page struct {
	Items  []*Item
	Number int // 1-based
	Total  int
}

// Paginate splits an ordered sequence of items into fixed-size pages.
// A size of zero, or a size covering all items, produces exactly one page;
// otherwise ceil(len(items)/size) pages partition the sequence contiguously
// in order. An empty sequence still yields one (empty) page so every listing
// context has a canonical index file.
func Paginate(items []*Item, size int) []Page {
	if size <= 0 || size >= len(items) {
		return []Page{{Items: items, Number: 1, Total: 1}}
	}

	total := (len(items) + size - 1) / size
	pages := make([]Page, 0, total)
	for n := 1; n <= total; n++ {
		start := (n - 1) * size
		end := min(start+size, len(items))
		pages = append(pages, Page{Items: items[start:end], Number: n, Total: total})
	}
	return pages
}

// IsFirst reports whether this is the group's canonical first page. Only the
// first page carries group-level extras such as a tag description.
func (p Page) IsFirst() bool {
	return p.Number == 1
}

// HasNav reports whether the page belongs to a multi-page group and needs
// pagination navigation rendered.
func (p Page) HasNav() bool {
	return p.Total > 1
}

// FileName returns the page's output file name: index.html for the first
// page, index2.html, index3.html, ... for the rest.
func (p Page) FileName() string {
	return IndexFileName(p.Number)
}

// IndexFileName maps a 1-based page number to its index file name.
func IndexFileName(n int) string {
	if n <= 1 {
		return "index.html"
	}
	return fmt.Sprintf("index%d.html", n)
}

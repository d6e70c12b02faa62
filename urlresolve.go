package mdblog

import "strings"

// URLResolver computes references from an output file at a given nesting
// depth to any other output artifact. Targets are root-relative paths
// without a leading slash ("index.html", "assets/css/default_light.css",
// "tags/python/index.html").
//
// Two modes, decided by the base URL:
//
//   - root marker ("/" or empty): purely relative references with one "../"
//     per depth level, so the output can be opened straight from the local
//     filesystem without a server;
//   - any other prefix: absolute references {base}/{target}, ignoring depth.
type URLResolver struct {
	base     string // normalized prefix without trailing slash; "" = relative mode
	relative bool
}

// NewURLResolver creates a resolver for the configured base URL.
func NewURLResolver(baseURL string) URLResolver {
	base := strings.TrimRight(baseURL, "/")
	return URLResolver{base: base, relative: base == ""}
}

// Resolve returns the reference string for target as seen from an output
// file depth directory levels below the output root (0 = root, 2 = a tag
// page at tags/<slug>/).
func (r URLResolver) Resolve(depth int, target string) string {
	target = strings.TrimLeft(target, "/")
	if !r.relative {
		return r.base + "/" + target
	}
	if depth <= 0 {
		return target
	}
	return strings.Repeat("../", depth) + target
}

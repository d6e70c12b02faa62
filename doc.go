// Package mdblog builds a static blog site from a directory of Markdown
// posts and standalone HTML pages.
//
// # Quick Start
//
// Load the site configuration, create a generator, and build:
//
//	cfg, err := mdblog.LoadSiteConfig("", "blog", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := mdblog.NewGenerator(cfg, "blog")
//	stats, err := gen.Build("output")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d posts, %d pages, %d tags\n",
//	    stats.MarkdownItems, stats.HTMLItems, stats.Tags)
//
// # Build Pipeline
//
// A build is a single deterministic pass over the source tree:
//
//  1. Scan: classify source files (Markdown posts, tag descriptions,
//     standalone HTML pages, static assets, config, template overrides)
//  2. Adapt: normalize every post and page into a content Item
//  3. Order: sort newest-first by date (or update date) and group by tag
//  4. Paginate: split the main index and each tag index into fixed-size pages
//  5. Write: per-item HTML files, index pages, tag indices, copied assets
//
// The same source tree always produces a byte-identical output tree, so a
// build can be re-run safely against a previously built output directory.
//
// # Content Sources
//
// Markdown files carry YAML frontmatter (title, date, update, description,
// author, tags, draft, toc, exclude_from_index, template). Standalone HTML
// files contribute their <title> and <meta name="description"> and sort by
// file modification time; their content is copied to the output verbatim.
//
// # Configuration
//
// Site-wide settings live in mdblog.config.yml at the source root: site
// metadata, light/dark themes, body/code fonts, TOC behavior, sort order,
// posts per index page, tag linking, and the base URL. All fields are
// optional and have documented defaults. A base URL of "/" produces relative
// links so the output can be browsed straight from the filesystem.
//
// # Custom Templates
//
// A templates/ directory under the source root overrides the embedded
// post, page, and index templates by name, falling back to the embedded
// versions for any template not overridden:
//
//	blog/
//	├── mdblog.config.yml
//	├── hello-world.md
//	├── tags/
//	│   └── python.md
//	└── templates/
//	    └── post.html.tmpl
package mdblog

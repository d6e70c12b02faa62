package mdblog

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdblog/internal/assets"
	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/render"
)

// Output directory for generated stylesheets, relative to the output root.
const cssDirName = "assets/css"

// Generator runs the full build pipeline: scan, adapt, order, paginate,
// write. One Generator builds one site; it holds no state between builds.
type Generator struct {
	cfg      SiteConfig
	source   string
	logger   *slog.Logger
	renderer *render.Renderer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the build logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator for one source tree and configuration.
func NewGenerator(cfg SiteConfig, sourceDir string, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		source:   sourceDir,
		logger:   slog.Default(),
		renderer: render.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BuildStats summarizes one completed build.
type BuildStats struct {
	MarkdownItems int // markdown items written (drafts excluded)
	HTMLItems     int // standalone HTML pages written
	Drafts        int // markdown items skipped as drafts
	Tags          int // tag groups with at least one indexable item
	IndexPages    int // index files written, main and per-tag combined
	StaticFiles   int // static assets copied
}

// Build generates the site into outputDir. The output directory is removed
// and recreated, so stale artifacts from earlier builds never survive.
// Item-level problems (bad frontmatter, unreadable tag description) degrade
// with a warning; structural problems (missing source, slug collision,
// template failure) abort with an error before or during writing.
func (g *Generator) Build(outputDir string) (*BuildStats, error) {
	set, err := ScanSource(g.source)
	if err != nil {
		return nil, err
	}

	resolver, err := assets.NewResolver(set.TemplateDir)
	if err != nil {
		return nil, err
	}
	if resolver.HasCustomLoader() {
		g.logger.Info("using template overrides", "dir", set.TemplateDir)
	}
	templates, err := loadTemplates(resolver)
	if err != nil {
		return nil, err
	}

	items, stats, err := g.adaptAll(set)
	if err != nil {
		return nil, err
	}
	if err := checkSlugCollisions(items); err != nil {
		return nil, err
	}

	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("%w: cleaning %s: %v", ErrWriteOutput, outputDir, err)
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	urls := NewURLResolver(g.cfg.BaseURL)
	sheets, err := g.writeStylesheets(outputDir, resolver)
	if err != nil {
		return nil, err
	}

	w := &writer{
		gen:       g,
		out:       outputDir,
		urls:      urls,
		sheets:    sheets,
		templates: templates,
	}

	for _, item := range items {
		if err := w.writeItem(set, item); err != nil {
			return nil, err
		}
	}

	indexable := make([]*Item, 0, len(items))
	for _, item := range items {
		if item.Indexable() {
			indexable = append(indexable, item)
		}
	}
	SortItems(indexable, g.cfg.SortByUpdate)

	for _, page := range Paginate(indexable, g.cfg.MaxPostsPerIndexPage) {
		if err := w.writeIndexPage(page, "", "", ""); err != nil {
			return nil, err
		}
		stats.IndexPages++
	}

	if g.cfg.TagsAsLink {
		groups := GroupByTag(indexable, g.logger)
		stats.Tags = len(groups)
		for _, group := range groups {
			description := g.renderTagDescription(set, group.Slug)
			for _, page := range Paginate(group.Items, g.cfg.MaxPostsPerIndexPage) {
				desc := description
				if !page.IsFirst() {
					desc = ""
				}
				dir := tagsDirName + "/" + group.Slug + "/"
				if err := w.writeIndexPage(page, dir, group.DisplayName, desc); err != nil {
					return nil, err
				}
				stats.IndexPages++
			}
		}
	}

	for _, rel := range set.Static {
		src := filepath.Join(set.Root, filepath.FromSlash(rel))
		dst := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := fileutil.CopyFile(src, dst); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		stats.StaticFiles++
	}

	return stats, nil
}

// adaptAll converts every content source into an Item, skipping drafts.
func (g *Generator) adaptAll(set *SourceSet) ([]*Item, *BuildStats, error) {
	stats := &BuildStats{}
	items := make([]*Item, 0, len(set.Markdown)+len(set.HTML))

	for _, rel := range set.Markdown {
		item, err := AdaptMarkdown(g.renderer, set.Root, rel, g.logger)
		if err != nil {
			return nil, nil, err
		}
		if item.Draft {
			g.logger.Debug("skipping draft", "file", rel)
			stats.Drafts++
			continue
		}
		items = append(items, item)
		stats.MarkdownItems++
	}
	for _, rel := range set.HTML {
		item, err := AdaptHTML(set.Root, rel)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		stats.HTMLItems++
	}
	return items, stats, nil
}

// checkSlugCollisions rejects a build in which two items map to the same
// output path. The check runs before any file is written.
func checkSlugCollisions(items []*Item) error {
	seen := make(map[string]string, len(items))
	for _, item := range items {
		if first, ok := seen[item.Slug]; ok {
			return fmt.Errorf("%w: %s from %s and %s", ErrSlugCollision, item.Slug, first, item.SourcePath)
		}
		seen[item.Slug] = item.SourcePath
	}
	return nil
}

// loadTemplates parses the three page templates through the asset resolver.
func loadTemplates(resolver *assets.Resolver) (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, 3)
	for _, name := range []string{TemplatePost, TemplatePage, "index"} {
		content, err := resolver.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderTemplate, name, err)
		}
		out[name] = tmpl
	}
	return out, nil
}

// stylesheetRef is one <link rel="stylesheet"> to emit, as a root-relative
// target plus an optional media query.
type stylesheetRef struct {
	Target string
	Media  string
}

// writeStylesheets emits the theme and font stylesheets into the output's
// assets/css directory and returns the link list every page includes. The
// light theme is the unconditional base; the dark theme applies on top under
// a prefers-color-scheme media query. The "system" font has no stylesheet.
func (g *Generator) writeStylesheets(outputDir string, resolver *assets.Resolver) ([]stylesheetRef, error) {
	sheets := make([]stylesheetRef, 0, 4)

	write := func(name, content string) (string, error) {
		target := cssDirName + "/" + name + ".css"
		path := filepath.Join(outputDir, filepath.FromSlash(target))
		if err := fileutil.WriteFile(path, []byte(content)); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return target, nil
	}

	light, err := resolver.LoadStyle(g.cfg.ThemeLight)
	if err != nil {
		return nil, err
	}
	target, err := write(g.cfg.ThemeLight, light)
	if err != nil {
		return nil, err
	}
	sheets = append(sheets, stylesheetRef{Target: target})

	if g.cfg.ThemeDark != g.cfg.ThemeLight {
		dark, err := resolver.LoadStyle(g.cfg.ThemeDark)
		if err != nil {
			return nil, err
		}
		target, err := write(g.cfg.ThemeDark, dark)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, stylesheetRef{Target: target, Media: "(prefers-color-scheme: dark)"})
	}

	for _, font := range []string{g.cfg.FontBody, g.cfg.FontCode} {
		if font == "" || font == "system" {
			continue
		}
		css, err := resolver.LoadFont(font)
		if err != nil {
			return nil, err
		}
		target, err := write(font, css)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, stylesheetRef{Target: target})
	}

	return sheets, nil
}

// renderTagDescription renders a tag's description file to HTML, or returns
// the empty string when the tag has none or the file cannot be used.
func (g *Generator) renderTagDescription(set *SourceSet, slug string) string {
	rel, ok := set.TagFiles[slug]
	if !ok {
		return ""
	}
	data, err := os.ReadFile(filepath.Clean(filepath.Join(set.Root, filepath.FromSlash(rel))))
	if err != nil {
		g.logger.Warn("unreadable tag description", "file", rel, "error", err)
		return ""
	}
	result, err := g.renderer.Render(data)
	if err != nil {
		g.logger.Warn("tag description failed to render", "file", rel, "error", err)
		return ""
	}
	return result.HTML
}

// writer holds the per-build state needed to emit output files.
type writer struct {
	gen       *Generator
	out       string
	urls      URLResolver
	sheets    []stylesheetRef
	templates map[string]*template.Template
}

// Template contexts. Each page template receives a typed context; templates
// never see Item or SiteConfig directly.
type siteContext struct {
	Title       string
	Description string
	Author      string
	HomeURL     string
	Stylesheets []stylesheetLink
}

type stylesheetLink struct {
	Href  string
	Media string
}

type tagRef struct {
	Name string
	URL  string // empty when tag pages are disabled
}

type postView struct {
	Title         string
	Description   string
	Author        string
	Date          string // display form; empty when undated or dates are hidden
	DateMachine   string
	Update        string
	UpdateMachine string
	Tags          []tagRef
	ReadingTime   int // zero when hidden
	Body          template.HTML
}

type postContext struct {
	Site    siteContext
	Post    postView
	ShowTOC bool
	TOC     template.HTML
}

type indexEntry struct {
	Title       string
	URL         string
	Date        string
	DateMachine string
	Description string
	Tags        []tagRef
	ReadingTime int
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type indexContext struct {
	Site           siteContext
	Entries        []indexEntry
	HasNav         bool
	PrevURL        string // empty on the first page
	NextURL        string // empty on the last page
	PageLinks      []pageLink
	FilteredTag    string        // tag display name; empty on the main index
	TagDescription template.HTML // first tag page only
}

// siteContext builds the shared page chrome for an output file at depth.
func (w *writer) siteContext(depth int) siteContext {
	links := make([]stylesheetLink, 0, len(w.sheets))
	for _, s := range w.sheets {
		links = append(links, stylesheetLink{
			Href:  w.urls.Resolve(depth, s.Target),
			Media: s.Media,
		})
	}
	return siteContext{
		Title:       w.gen.cfg.Title,
		Description: w.gen.cfg.Description,
		Author:      w.gen.cfg.Author,
		HomeURL:     w.urls.Resolve(depth, "index.html"),
		Stylesheets: links,
	}
}

// tagRefs maps tag display names to links as seen from depth.
func (w *writer) tagRefs(tags []string, depth int) []tagRef {
	if len(tags) == 0 {
		return nil
	}
	refs := make([]tagRef, 0, len(tags))
	for _, tag := range tags {
		ref := tagRef{Name: tag}
		if w.gen.cfg.TagsAsLink {
			ref.URL = w.urls.Resolve(depth, tagsDirName+"/"+Slugify(tag)+"/index.html")
		}
		refs = append(refs, ref)
	}
	return refs
}

// writeItem emits one item's output file. Markdown items render through
// their template; HTML items copy through byte-for-byte.
func (w *writer) writeItem(set *SourceSet, item *Item) error {
	dst := filepath.Join(w.out, filepath.FromSlash(item.Slug))

	if item.Slug == "index.html" {
		w.gen.logger.Warn("item output will be overwritten by the generated index",
			"file", item.SourcePath)
	}

	if item.Kind == KindHTML {
		src := filepath.Join(set.Root, filepath.FromSlash(item.SourcePath))
		if err := fileutil.CopyFile(src, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	depth := item.Depth()
	cfg := w.gen.cfg

	view := postView{
		Title:       item.Title,
		Description: item.Description,
		Author:      item.Author,
		Tags:        w.tagRefs(item.Tags, depth),
		Body:        template.HTML(item.BodyHTML),
	}
	if cfg.ShowDate && item.Date.Valid {
		view.Date = dateutil.FormatDisplay(item.Date.Time)
		view.DateMachine = dateutil.FormatMachine(item.Date.Time)
	}
	if cfg.ShowDate && item.Update.Valid {
		view.Update = dateutil.FormatDisplay(item.Update.Time)
		view.UpdateMachine = dateutil.FormatMachine(item.Update.Time)
	}
	if cfg.ShowReadingTime {
		view.ReadingTime = item.ReadingTime
	}

	ctx := postContext{
		Site: w.siteContext(depth),
		Post: view,
	}
	if ShowTOC(item, cfg.ShowTOC, cfg.TOCMinHeadings) {
		ctx.ShowTOC = true
		ctx.TOC = template.HTML(BuildTOC(item.Headings))
	}

	return w.execute(item.Template, dst, ctx)
}

// writeIndexPage emits one page of a listing: the main index when dir is
// empty, a tag index otherwise. dir is the root-relative output directory
// with a trailing slash.
func (w *writer) writeIndexPage(page Page, dir, tagName, tagDescription string) error {
	depth := 0
	if dir != "" {
		depth = 2 // tags/<slug>/
	}
	cfg := w.gen.cfg

	entries := make([]indexEntry, 0, len(page.Items))
	for _, item := range page.Items {
		entry := indexEntry{
			Title:       item.Title,
			URL:         w.urls.Resolve(depth, item.Slug),
			Description: item.Description,
			Tags:        w.tagRefs(item.Tags, depth),
		}
		if cfg.ShowDate && item.Date.Valid {
			entry.Date = dateutil.FormatDisplay(item.Date.Time)
			entry.DateMachine = dateutil.FormatMachine(item.Date.Time)
		}
		if cfg.ShowReadingTime && item.Kind == KindMarkdown {
			entry.ReadingTime = item.ReadingTime
		}
		entries = append(entries, entry)
	}

	ctx := indexContext{
		Site:           w.siteContext(depth),
		Entries:        entries,
		HasNav:         page.HasNav(),
		FilteredTag:    tagName,
		TagDescription: template.HTML(tagDescription),
	}
	if page.HasNav() {
		if page.Number > 1 {
			ctx.PrevURL = w.urls.Resolve(depth, dir+IndexFileName(page.Number-1))
		}
		if page.Number < page.Total {
			ctx.NextURL = w.urls.Resolve(depth, dir+IndexFileName(page.Number+1))
		}
		for n := 1; n <= page.Total; n++ {
			link := pageLink{Number: n, Current: n == page.Number}
			if !link.Current {
				link.URL = w.urls.Resolve(depth, dir+IndexFileName(n))
			}
			ctx.PageLinks = append(ctx.PageLinks, link)
		}
	}

	dst := filepath.Join(w.out, filepath.FromSlash(dir+page.FileName()))
	return w.execute("index", dst, ctx)
}

// execute renders a template into its output file.
func (w *writer) execute(name, dst string, ctx any) error {
	tmpl, ok := w.templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateKind, name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderTemplate, name, err)
	}
	if err := fileutil.WriteFile(dst, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

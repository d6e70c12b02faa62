package mdblog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/render"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func adapt(t *testing.T, root, rel string) *mdblog.Item {
	t.Helper()
	item, err := mdblog.AdaptMarkdown(render.New(), root, rel, discardLogger())
	if err != nil {
		t.Fatalf("AdaptMarkdown(%q): %v", rel, err)
	}
	return item
}

func TestAdaptMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("full frontmatter", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "intro.md", `---
title: Getting Started
date: 2025-01-15
update: 2025-02-01
description: A gentle introduction.
author: Ada
tags:
  - go
  - tutorial
---

## First Steps

Some body text.
`)
		item := adapt(t, root, "intro.md")

		if item.Kind != mdblog.KindMarkdown {
			t.Errorf("Kind = %q", item.Kind)
		}
		if item.Slug != "intro.html" {
			t.Errorf("Slug = %q, want intro.html", item.Slug)
		}
		if item.Title != "Getting Started" {
			t.Errorf("Title = %q", item.Title)
		}
		if !item.Date.Valid || item.Date.Time.Format("2006-01-02") != "2025-01-15" {
			t.Errorf("Date = %+v", item.Date)
		}
		if item.Date.Granularity != mdblog.GranularityDate {
			t.Errorf("Granularity = %q", item.Date.Granularity)
		}
		if !item.Update.Valid {
			t.Error("Update should be valid")
		}
		if item.Description != "A gentle introduction." {
			t.Errorf("Description = %q", item.Description)
		}
		if item.Author != "Ada" {
			t.Errorf("Author = %q", item.Author)
		}
		if len(item.Tags) != 2 || item.Tags[0] != "go" || item.Tags[1] != "tutorial" {
			t.Errorf("Tags = %v", item.Tags)
		}
		if item.Template != mdblog.TemplatePost {
			t.Errorf("Template = %q", item.Template)
		}
		if !strings.Contains(item.BodyHTML, "<h2") {
			t.Errorf("BodyHTML missing heading:\n%s", item.BodyHTML)
		}
		if len(item.Headings) != 1 || item.Headings[0].Text != "First Steps" {
			t.Errorf("Headings = %+v", item.Headings)
		}
	})

	t.Run("nested path keeps directory in slug", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "tutorials/intro.md", "# Hi\n")
		item := adapt(t, root, "tutorials/intro.md")
		if item.Slug != "tutorials/intro.html" {
			t.Errorf("Slug = %q, want tutorials/intro.html", item.Slug)
		}
		if item.Depth() != 1 {
			t.Errorf("Depth = %d, want 1", item.Depth())
		}
	})

	t.Run("missing title derives from filename", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "getting-started.md", "body only\n")
		item := adapt(t, root, "getting-started.md")
		if item.Title != "Getting Started" {
			t.Errorf("Title = %q, want Getting Started", item.Title)
		}
	})

	t.Run("no frontmatter means defaults", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "note.md", "just text\n")
		item := adapt(t, root, "note.md")
		if item.Date.Valid {
			t.Error("item should be undated")
		}
		if item.Draft {
			t.Error("item should not be a draft")
		}
		if item.Template != mdblog.TemplatePost {
			t.Errorf("Template = %q", item.Template)
		}
	})

	t.Run("unparsable date degrades to undated", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "bad.md", "---\ntitle: X\ndate: next tuesday\n---\nbody\n")
		item := adapt(t, root, "bad.md")
		if item.Date.Valid {
			t.Errorf("Date should be invalid, got %+v", item.Date)
		}
		if item.Title != "X" {
			t.Errorf("other fields should survive, Title = %q", item.Title)
		}
	})

	t.Run("invalid template falls back to post", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "x.md", "---\ntemplate: fancy\n---\nbody\n")
		item := adapt(t, root, "x.md")
		if item.Template != mdblog.TemplatePost {
			t.Errorf("Template = %q, want post", item.Template)
		}
	})

	t.Run("page template accepted", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "about.md", "---\ntemplate: page\n---\nbody\n")
		item := adapt(t, root, "about.md")
		if item.Template != mdblog.TemplatePage {
			t.Errorf("Template = %q, want page", item.Template)
		}
	})

	t.Run("draft and exclude flags", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "d.md", "---\ndraft: true\nexclude_from_index: true\n---\nbody\n")
		item := adapt(t, root, "d.md")
		if !item.Draft {
			t.Error("Draft should be set")
		}
		if !item.ExcludeFromIndex {
			t.Error("ExcludeFromIndex should be set")
		}
		if item.Indexable() {
			t.Error("item should not be indexable")
		}
	})

	t.Run("toc override", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "t.md", "---\ntoc: false\n---\nbody\n")
		item := adapt(t, root, "t.md")
		if item.TOCOverride == nil || *item.TOCOverride {
			t.Errorf("TOCOverride = %v, want false", item.TOCOverride)
		}

		writeSource(t, root, "u.md", "---\ntitle: U\n---\nbody\n")
		if adapt(t, root, "u.md").TOCOverride != nil {
			t.Error("absent toc key should leave override nil")
		}
	})

	t.Run("empty tags dropped", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "tg.md", "---\ntags:\n  - go\n  - \"  \"\n  - \"\"\n---\nbody\n")
		item := adapt(t, root, "tg.md")
		if len(item.Tags) != 1 || item.Tags[0] != "go" {
			t.Errorf("Tags = %v, want [go]", item.Tags)
		}
	})

	t.Run("reading time has a floor of one minute", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "short.md", "tiny\n")
		if got := adapt(t, root, "short.md").ReadingTime; got != 1 {
			t.Errorf("ReadingTime = %d, want 1", got)
		}

		long := strings.Repeat("word ", 700)
		writeSource(t, root, "long.md", long)
		if got := adapt(t, root, "long.md").ReadingTime; got != 4 {
			t.Errorf("ReadingTime = %d, want 4", got)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if _, err := mdblog.AdaptMarkdown(render.New(), root, "missing.md", discardLogger()); err == nil {
			t.Error("want error for missing file")
		}
	})
}

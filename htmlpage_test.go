package mdblog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdblog "github.com/alnah/go-mdblog"
)

func TestAdaptHTML(t *testing.T) {
	t.Parallel()

	t.Run("title and description extracted", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		doc := `<!DOCTYPE html>
<html><head>
<title>My Project</title>
<meta name="description" content="A demo page.">
</head><body><p>hi</p></body></html>`
		writeSource(t, root, "project.html", doc)

		item, err := mdblog.AdaptHTML(root, "project.html")
		if err != nil {
			t.Fatal(err)
		}
		if item.Kind != mdblog.KindHTML {
			t.Errorf("Kind = %q", item.Kind)
		}
		if item.Title != "My Project" {
			t.Errorf("Title = %q", item.Title)
		}
		if item.Description != "A demo page." {
			t.Errorf("Description = %q", item.Description)
		}
		if item.Template != mdblog.TemplatePage {
			t.Errorf("Template = %q", item.Template)
		}
		if !bytes.Contains(item.RawHTML, []byte("<p>hi</p>")) {
			t.Error("RawHTML should carry the source bytes")
		}
	})

	t.Run("missing title derives from filename", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "cool-demo.html", "<p>no head</p>")

		item, err := mdblog.AdaptHTML(root, "cool-demo.html")
		if err != nil {
			t.Fatal(err)
		}
		if item.Title != "Cool Demo" {
			t.Errorf("Title = %q, want Cool Demo", item.Title)
		}
	})

	t.Run("date is the file modification time", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "p.html", "<title>P</title>")
		mtime := time.Date(2025, 4, 1, 14, 30, 0, 0, time.UTC)
		path := filepath.Join(root, "p.html")
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}

		item, err := mdblog.AdaptHTML(root, "p.html")
		if err != nil {
			t.Fatal(err)
		}
		if !item.Date.Valid || item.Date.Granularity != mdblog.GranularityDateTime {
			t.Fatalf("Date = %+v", item.Date)
		}
		if !item.Date.Time.Equal(mtime) {
			t.Errorf("Date.Time = %v, want %v", item.Date.Time, mtime)
		}
	})

	t.Run("htm extension normalizes to html slug", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeSource(t, root, "legacy.htm", "<title>Legacy</title>")

		item, err := mdblog.AdaptHTML(root, "legacy.htm")
		if err != nil {
			t.Fatal(err)
		}
		if item.Slug != "legacy.html" {
			t.Errorf("Slug = %q, want legacy.html", item.Slug)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		if _, err := mdblog.AdaptHTML(t.TempDir(), "nope.html"); err == nil {
			t.Error("want error for missing file")
		}
	})
}

package assets_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdblog/internal/assets"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "simple", in: "post", wantErr: false},
		{name: "hyphenated", in: "jetbrains-mono", wantErr: false},
		{name: "underscored", in: "default_light", wantErr: false},
		{name: "empty", in: "", wantErr: true},
		{name: "forward slash", in: "a/b", wantErr: true},
		{name: "backslash", in: `a\b`, wantErr: true},
		{name: "traversal", in: "..", wantErr: true},
		{name: "hidden traversal", in: "a..b", wantErr: true},
		{name: "null byte", in: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := assets.ValidateAssetName(tt.in)
			if tt.wantErr && !errors.Is(err, assets.ErrInvalidAssetName) {
				t.Errorf("err = %v, want ErrInvalidAssetName", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("templates", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"post", "page", "index"} {
			content, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q): %v", name, err)
			}
			if !strings.Contains(content, "<!DOCTYPE html>") {
				t.Errorf("template %q is not a standalone document", name)
			}
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()
		_, err := loader.LoadTemplate("nope")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("err = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("styles", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"default_light", "default_dark"} {
			content, err := loader.LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q): %v", name, err)
			}
			if !strings.Contains(content, "--font-body") {
				t.Errorf("style %q missing the font custom property", name)
			}
			if !strings.Contains(content, ".chroma") {
				t.Errorf("style %q missing syntax highlighting rules", name)
			}
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()
		_, err := loader.LoadStyle("neon")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("err = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("fonts", func(t *testing.T) {
		t.Parallel()
		fonts := []string{
			"inter", "manrope", "space-grotesk", "outfit", "geist",
			"jetbrains-mono", "fira-code", "geist-mono",
		}
		for _, name := range fonts {
			content, err := loader.LoadFont(name)
			if err != nil {
				t.Fatalf("LoadFont(%q): %v", name, err)
			}
			if !strings.Contains(content, "--font-") {
				t.Errorf("font %q does not override a font custom property", name)
			}
		}
	})

	t.Run("unknown font", func(t *testing.T) {
		t.Parallel()
		_, err := loader.LoadFont("comic-sans")
		if !errors.Is(err, assets.ErrFontNotFound) {
			t.Errorf("err = %v, want ErrFontNotFound", err)
		}
	})
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads from directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "post.html.tmpl"), []byte("custom"), 0o644); err != nil {
			t.Fatal(err)
		}
		loader, err := assets.NewFilesystemLoader(dir)
		if err != nil {
			t.Fatal(err)
		}
		content, err := loader.LoadTemplate("post")
		if err != nil {
			t.Fatal(err)
		}
		if content != "custom" {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()
		loader, err := assets.NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		_, err = loader.LoadTemplate("post")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("err = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()
		_, err := assets.NewFilesystemLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Errorf("err = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("no override uses embedded", func(t *testing.T) {
		t.Parallel()
		r, err := assets.NewResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if r.HasCustomLoader() {
			t.Error("no override directory, yet a custom loader is set")
		}
		if _, err := r.LoadTemplate("post"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("custom first, embedded fallback", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "post.html.tmpl"), []byte("override"), 0o644); err != nil {
			t.Fatal(err)
		}
		r, err := assets.NewResolver(dir)
		if err != nil {
			t.Fatal(err)
		}

		got, err := r.LoadTemplate("post")
		if err != nil {
			t.Fatal(err)
		}
		if got != "override" {
			t.Errorf("custom template not preferred, got %q", got)
		}

		// index is absent from the override directory, falls back to embedded.
		fallback, err := r.LoadTemplate("index")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(fallback, "<!DOCTYPE html>") {
			t.Error("embedded fallback not used for missing override")
		}
	})

	t.Run("styles and fonts stay embedded", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "default_light.css"), []byte("bogus"), 0o644); err != nil {
			t.Fatal(err)
		}
		r, err := assets.NewResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		css, err := r.LoadStyle("default_light")
		if err != nil {
			t.Fatal(err)
		}
		if css == "bogus" {
			t.Error("styles must not resolve from the override directory")
		}
	})
}

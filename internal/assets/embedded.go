package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*.html.tmpl
var templates embed.FS

//go:embed styles/*.css
var styles embed.FS

//go:embed fonts/*.css
var fonts embed.FS

// TemplateLoader loads page templates by name. Implementations may load from
// embedded assets or the filesystem.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without the .html.tmpl
	// extension). Returns ErrTemplateNotFound if it doesn't exist.
	LoadTemplate(name string) (string, error)
}

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a built-in page template by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// LoadStyle loads a built-in theme stylesheet by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadFont loads a built-in font stylesheet by name. The "system" font has
// no stylesheet; callers skip it before asking.
func (e *EmbeddedLoader) LoadFont(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := fonts.ReadFile("fonts/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)

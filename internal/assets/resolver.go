package assets

import "errors"

// Resolver combines a custom template loader with the embedded one. When a
// custom override directory is configured, templates resolve custom-first
// and fall back to embedded when the override directory doesn't carry them.
// Styles and fonts always come from the embedded set.
type Resolver struct {
	custom   TemplateLoader // nil when no override directory is configured
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty overridePath means embedded
// templates only. Returns an error if overridePath is set but unreadable.
func NewResolver(overridePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if overridePath != "" {
		fsLoader, err := NewFilesystemLoader(overridePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadTemplate loads a page template, trying the override directory first.
// Only not-found errors fall through to the embedded set; validation and
// I/O errors surface immediately.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}
	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return r.embedded.LoadTemplate(name)
}

// LoadStyle loads a built-in theme stylesheet.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.embedded.LoadStyle(name)
}

// LoadFont loads a built-in font stylesheet.
func (r *Resolver) LoadFont(name string) (string, error) {
	return r.embedded.LoadFont(name)
}

// HasCustomLoader reports whether an override directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)

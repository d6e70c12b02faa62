package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads page templates from a directory, typically the
// templates/ override directory under a site's source root.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if basePath is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, basePath)
	}
	return &FilesystemLoader{basePath: basePath}, nil
}

// LoadTemplate loads <base>/<name>.html.tmpl.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	path := filepath.Join(f.basePath, name+".html.tmpl")
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ TemplateLoader = (*FilesystemLoader)(nil)

package mdblog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Reserved names under the source root.
const (
	tagsDirName      = "tags"
	templatesDirName = "templates"
)

// SourceSet is the result of scanning a source tree: every file classified
// into exactly one bucket. Paths are source-root-relative with forward
// slashes, in lexical walk order, so downstream stages are deterministic.
type SourceSet struct {
	Root string

	Markdown []string          // post candidates
	HTML     []string          // standalone page candidates
	Static   []string          // copied verbatim, structure preserved
	TagFiles map[string]string // tag slug -> relative path of description file

	// TemplateDir is the template override directory under the source root,
	// empty when absent.
	TemplateDir string
}

// ScanSource walks the source root and classifies every file. Classification
// priority: the config file is never copied; Markdown files under tags/ are
// tag descriptions; other Markdown files are posts; HTML files are pages;
// everything else is a static asset. An empty source root yields an empty,
// valid SourceSet. Only a missing or unreadable root is fatal.
func ScanSource(root string) (*SourceSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, root)
		}
		return nil, fmt.Errorf("reading source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotDir, root)
	}

	set := &SourceSet{
		Root:     root,
		Markdown: make([]string, 0),
		HTML:     make([]string, 0),
		Static:   make([]string, 0),
		TagFiles: make(map[string]string),
	}

	overrideDir := filepath.Join(root, templatesDirName)
	if fi, statErr := os.Stat(overrideDir); statErr == nil && fi.IsDir() {
		set.TemplateDir = overrideDir
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The template override directory is its own classification; its
			// contents belong to no content or asset bucket.
			if path == overrideDir {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		set.classify(rel)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning source directory %s: %w", root, walkErr)
	}

	return set, nil
}

// classify places one relative file path into its bucket.
func (s *SourceSet) classify(rel string) {
	base := filepath.Base(rel)

	if isConfigFile(rel) {
		return // never copied, loaded separately
	}

	isMarkdown := hasSuffixFold(base, ".md") || hasSuffixFold(base, ".markdown")
	inTagsDir := strings.HasPrefix(rel, tagsDirName+"/")

	switch {
	case isMarkdown && inTagsDir:
		slug := strings.TrimSuffix(base, filepath.Ext(base))
		s.TagFiles[slug] = rel
	case isMarkdown:
		s.Markdown = append(s.Markdown, rel)
	case hasSuffixFold(base, ".html") || hasSuffixFold(base, ".htm"):
		s.HTML = append(s.HTML, rel)
	default:
		s.Static = append(s.Static, rel)
	}
}

// isConfigFile reports whether rel is the site config file at the source root.
func isConfigFile(rel string) bool {
	return rel == ConfigFileName+".yml" || rel == ConfigFileName+".yaml"
}

// hasSuffixFold is a case-insensitive strings.HasSuffix.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

package mdblog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// ConfigFileName is the site configuration file expected at the source root.
// Both .yml and .yaml extensions are accepted, .yml first.
const ConfigFileName = "mdblog.config"

// Font identifiers shipped as embedded stylesheets. "system" means no
// webfont stylesheet is emitted.
var (
	AvailableBodyFonts = []string{"system", "inter", "manrope", "space-grotesk", "outfit", "geist"}
	AvailableCodeFonts = []string{"system", "jetbrains-mono", "fira-code", "geist-mono"}
)

// Theme identifiers shipped as embedded stylesheets.
var AvailableThemes = []string{"default_light", "default_dark"}

// SiteConfig holds the site-wide build configuration. It is read once at
// build start and passed explicitly through the scanner, adapters, ordering
// engine, and writer; there is no ambient global configuration.
type SiteConfig struct {
	// Site metadata.
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`

	// Appearance.
	ThemeLight string `yaml:"theme_light"`
	ThemeDark  string `yaml:"theme_dark"`
	FontBody   string `yaml:"font_body"`
	FontCode   string `yaml:"font_code"`

	// Font is the legacy single-font key; it migrates to FontBody when
	// font_body is absent.
	Font string `yaml:"font"`

	// Features.
	ShowTOC              bool `yaml:"show_toc"`
	TOCMinHeadings       int  `yaml:"toc_min_headings"`
	ShowDate             bool `yaml:"show_date"`
	ShowReadingTime      bool `yaml:"show_reading_time"`
	SortByUpdate         bool `yaml:"sort_by_update"`
	MaxPostsPerIndexPage int  `yaml:"max_posts_per_index_page"` // 0 = unbounded
	TagsAsLink           bool `yaml:"tags_as_link"`

	// Output settings. A base URL of "/" (or empty) produces relative links
	// so the output works when opened directly from the filesystem.
	BaseURL string `yaml:"base_url"`
}

// DefaultSiteConfig returns the documented defaults. Font fields are left
// empty here so the legacy "font" key can be detected during normalization;
// they resolve to "system".
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:                "My Blog",
		Description:          "",
		Author:               "",
		ThemeLight:           "default_light",
		ThemeDark:            "default_dark",
		ShowTOC:              true,
		TOCMinHeadings:       3,
		ShowDate:             true,
		ShowReadingTime:      true,
		SortByUpdate:         false,
		MaxPostsPerIndexPage: 0,
		TagsAsLink:           true,
		BaseURL:              "/",
	}
}

// LoadSiteConfig loads the site configuration. With an explicit configPath
// the file must exist; otherwise mdblog.config.yml (then .yaml) is looked up
// under sourceDir, and a missing file yields the defaults. Unknown keys and
// malformed YAML are fatal; unknown font or theme identifiers are not (they
// warn through logger and fall back).
func LoadSiteConfig(configPath, sourceDir string, logger *slog.Logger) (SiteConfig, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := DefaultSiteConfig()

	path := configPath
	if path == "" {
		for _, ext := range []string{".yml", ".yaml"} {
			candidate := filepath.Join(sourceDir, ConfigFileName+ext)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			cfg.normalize(logger)
			return cfg, nil // no config file, defaults apply
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return SiteConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	cfg.normalize(logger)
	return cfg, nil
}

// normalize migrates legacy keys and applies fallback defaults for unknown
// font and theme identifiers. Per-item recoverable per the error policy:
// warn and continue, never abort the build.
func (c *SiteConfig) normalize(logger *slog.Logger) {
	if c.Font != "" && c.FontBody == "" {
		c.FontBody = c.Font
	}
	c.Font = ""
	if c.FontBody == "" {
		c.FontBody = "system"
	}
	if c.FontCode == "" {
		c.FontCode = "system"
	}

	if !contains(AvailableBodyFonts, c.FontBody) {
		logger.Warn("unknown body font, falling back to system",
			"font", c.FontBody, "available", strings.Join(AvailableBodyFonts, ", "))
		c.FontBody = "system"
	}
	if !contains(AvailableCodeFonts, c.FontCode) {
		logger.Warn("unknown code font, falling back to system",
			"font", c.FontCode, "available", strings.Join(AvailableCodeFonts, ", "))
		c.FontCode = "system"
	}
	if !contains(AvailableThemes, c.ThemeLight) {
		logger.Warn("unknown light theme, falling back to default_light", "theme", c.ThemeLight)
		c.ThemeLight = "default_light"
	}
	if !contains(AvailableThemes, c.ThemeDark) {
		logger.Warn("unknown dark theme, falling back to default_dark", "theme", c.ThemeDark)
		c.ThemeDark = "default_dark"
	}
	if c.TOCMinHeadings < 0 {
		c.TOCMinHeadings = 0
	}
	if c.MaxPostsPerIndexPage < 0 {
		c.MaxPostsPerIndexPage = 0
	}
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

package mdblog

import "errors"

// Sentinel errors for library operations.
var (
	ErrSourceNotFound = errors.New("source directory not found")
	ErrSourceNotDir   = errors.New("source path is not a directory")
	ErrSlugCollision  = errors.New("output path collision between content items")
	ErrRenderMarkdown = errors.New("markdown rendering failed")
	ErrRenderTemplate = errors.New("template rendering failed")
	ErrWriteOutput    = errors.New("failed to write output")

	// Site configuration errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")

	// Content validation errors.
	ErrInvalidTemplateKind = errors.New("invalid template kind")
)

// Package assets provides the built-in page templates, theme stylesheets,
// and font stylesheets, with optional filesystem overrides for templates.
//
// Built-ins are embedded in the binary. When a site supplies a templates/
// directory, templates resolve custom-first with fallback to the embedded
// versions; themes and fonts are always embedded.
package assets

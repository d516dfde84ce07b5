// Package scaffold renders the full scaffolding file set for a project
// configuration and writes it beneath an output root. Rendering is
// template-driven: per-entity code blocks and project-level files live as
// Go text/templates in an embedded filesystem, executed in strict mode.
package scaffold

import "errors"

// Sentinel errors for rendering and assembly.
var (
	// ErrTemplateNotFound indicates the named template is not in the
	// embedded filesystem.
	ErrTemplateNotFound = errors.New("scaffold: template not found")

	// ErrMissingTemplateKey indicates template execution referenced a key
	// absent from the render data (strict mode).
	ErrMissingTemplateKey = errors.New("scaffold: missing template key")

	// ErrUnexpandedToken indicates a template token survived rendering.
	ErrUnexpandedToken = errors.New("scaffold: unexpanded template token")

	// ErrPathTraversal indicates a rendered file path would escape the
	// project root.
	ErrPathTraversal = errors.New("scaffold: path escapes project root")
)

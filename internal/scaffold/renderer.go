package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

// unexpandedTokenPattern detects leftover Go template tokens in rendered
// output. Generated Python routinely contains single-brace literals like
// "/api/items/{item_id}", so only double-brace tokens are flagged.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes it
	// with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)

	// Static returns the raw content of a single non-template file by name.
	Static(name string) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()

	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return result, nil
}

// Static returns the content of a single named non-template file.
func (r *renderer) Static(name string) ([]byte, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}

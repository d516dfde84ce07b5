package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Assembler writes rendered file sets beneath an output root. It is a
// single-pass writer: the first failed write aborts the run, and partial
// output is left in place for inspection.
type Assembler struct {
	outputRoot string
	onFile     func(path string)
}

// NewAssembler creates an Assembler rooted at outputRoot. The root is
// created on first write.
func NewAssembler(outputRoot string) *Assembler {
	return &Assembler{outputRoot: filepath.Clean(outputRoot)}
}

// OnFile registers a callback invoked after each file is written, with
// the project-relative path. Used for progress reporting.
func (a *Assembler) OnFile(fn func(path string)) {
	a.onFile = fn
}

// Write creates <outputRoot>/<projectName>/ and writes every file into it,
// creating parent directories on demand. It returns the absolute-or-given
// project root path on success.
func (a *Assembler) Write(projectName string, files []File) (string, error) {
	projectRoot := filepath.Join(a.outputRoot, projectName)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return "", fmt.Errorf("assemble mkdir %q: %w", projectRoot, err)
	}

	for _, f := range files {
		if err := validateWritePath(projectRoot, f.Path); err != nil {
			return "", err
		}

		dest := filepath.Join(projectRoot, filepath.FromSlash(f.Path))
		if dir := filepath.Dir(dest); dir != projectRoot {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("assemble mkdir %q: %w", dir, err)
			}
		}

		if err := os.WriteFile(dest, []byte(f.Content), 0o644); err != nil {
			return "", fmt.Errorf("assemble write %q: %w", dest, err)
		}

		if a.onFile != nil {
			a.onFile(f.Path)
		}
	}

	return projectRoot, nil
}

// validateWritePath ensures a rendered file path does not escape projectRoot.
func validateWritePath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// Previewer renders the generated README as styled markdown in the
// terminal. In headless or no-color mode the raw markdown is printed
// unchanged.
type Previewer struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewPreviewer creates a Previewer writing to os.Stdout.
func NewPreviewer(theme *Theme, hm *HeadlessManager) *Previewer {
	return &Previewer{theme: theme, headless: hm, writer: os.Stdout}
}

// newPreviewerWithWriter creates a Previewer with a custom writer (for testing).
func newPreviewerWithWriter(theme *Theme, hm *HeadlessManager, w io.Writer) *Previewer {
	return &Previewer{theme: theme, headless: hm, writer: w}
}

// Preview renders markdown to the terminal. Rendering failures fall back
// to the raw markdown rather than failing the run.
func (p *Previewer) Preview(markdown string) error {
	if p.headless.IsHeadless() || p.theme.NoColor {
		_, err := fmt.Fprintln(p.writer, markdown)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		_, werr := fmt.Fprintln(p.writer, markdown)
		return werr
	}

	out, err := r.Render(markdown)
	if err != nil {
		_, werr := fmt.Fprintln(p.writer, markdown)
		return werr
	}

	_, err = fmt.Fprint(p.writer, out)
	return err
}

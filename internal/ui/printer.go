package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/buildforge/scaffold/internal/scaffold"
)

// Printer writes styled status and summary lines for the generate command.
type Printer struct {
	theme  *Theme
	writer io.Writer
}

// NewPrinter creates a Printer writing to os.Stdout.
func NewPrinter(theme *Theme) *Printer {
	return &Printer{theme: theme, writer: os.Stdout}
}

// newPrinterWithWriter creates a Printer with a custom writer (for testing).
func newPrinterWithWriter(theme *Theme, w io.Writer) *Printer {
	return &Printer{theme: theme, writer: w}
}

// Title prints a bold section heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.writer, p.theme.Title.Render(text))
}

// Success prints a success line with a check mark.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Info prints a muted informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Muted.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line with a cross mark to the writer.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Summary prints the generated project root followed by one muted line per
// written file, in write order.
func (p *Printer) Summary(projectRoot string, files []scaffold.File) {
	p.Success("Generated project at %s (%d files)", projectRoot, len(files))
	for _, f := range files {
		p.Info("  %s", f.Path)
	}
}

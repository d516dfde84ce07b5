// Package ui provides the terminal output layer: theme styles, TTY
// detection, progress display, and the generated-project summary.
package ui

import "github.com/charmbracelet/lipgloss"

// ThemeColors holds the color values used by styled output.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme bundles the lipgloss styles for CLI output. With NoColor set all
// styles degrade to plain text.
type Theme struct {
	NoColor bool
	Colors  ThemeColors

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// ThemeConfig configures theme construction.
type ThemeConfig struct {
	NoColor bool
}

// NewTheme creates a Theme. When NoColor is set, every style renders
// unstyled text.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{
		NoColor: cfg.NoColor,
		Colors: ThemeColors{
			Primary:   "#C45A3C",
			Secondary: "#DA7756",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
		},
	}

	if cfg.NoColor {
		t.Title = lipgloss.NewStyle()
		t.Success = lipgloss.NewStyle()
		t.Error = lipgloss.NewStyle()
		t.Muted = lipgloss.NewStyle()
		return t
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})

	return t
}

// Package wizard collects a project configuration interactively when no
// metadata file is given and a terminal is attached.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/buildforge/scaffold/internal/config"
	"github.com/buildforge/scaffold/internal/issue"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard: cancelled")

// Result is the completed wizard outcome.
type Result struct {
	ProjectName string
	Config      config.Project
}

// Run executes the project wizard and returns the collected configuration.
// Entities are extracted from the description the same way they are from
// issue metadata. Each question runs as its own huh.Form to avoid the
// huh v0.8.x YOffset scroll bug when multiple groups share a viewport.
func Run() (*Result, error) {
	theme := newWizardTheme()

	var (
		projectName string
		framework   string
		database    string
		features    []string
		description string
	)

	fields := []huh.Field{
		huh.NewInput().
			Title("Project name").
			Placeholder("my-project").
			Validate(validateProjectName).
			Value(&projectName),
		huh.NewSelect[string]().
			Title("Framework").
			Options(
				huh.NewOption("Django - Full-stack web framework", config.FrameworkDjango),
				huh.NewOption("Flask - Lightweight web framework", config.FrameworkFlask),
				huh.NewOption("FastAPI - Modern async API framework", config.FrameworkFastAPI),
			).
			Value(&framework),
		huh.NewSelect[string]().
			Title("Database").
			Options(
				huh.NewOption("SQLite - Zero-config file database", config.DatabaseSQLite),
				huh.NewOption("PostgreSQL - Production SQL database", config.DatabasePostgreSQL),
				huh.NewOption("MySQL - Popular SQL database", config.DatabaseMySQL),
				huh.NewOption("MongoDB - Document database", config.DatabaseMongoDB),
			).
			Value(&database),
		huh.NewMultiSelect[string]().
			Title("Features").
			Options(
				huh.NewOption("User Authentication", config.FeatureAuth),
				huh.NewOption("REST API", config.FeatureRESTAPI),
				huh.NewOption("GraphQL API", config.FeatureGraphQL),
				huh.NewOption("Celery", config.FeatureCelery),
				huh.NewOption("Docker Support", config.FeatureDocker),
				huh.NewOption("Unit Tests", config.FeatureTests),
			).
			Value(&features),
		huh.NewText().
			Title("Description").
			Description("Entity names are picked up from keywords here, e.g. \"a blog with posts and comments\"").
			Value(&description),
	}

	for _, f := range fields {
		form := huh.NewForm(huh.NewGroup(f)).
			WithTheme(theme).
			WithAccessible(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard: %w", err)
		}
	}

	if features == nil {
		features = []string{}
	}

	return &Result{
		ProjectName: strings.TrimSpace(projectName),
		Config: config.Project{
			Framework:   framework,
			Database:    database,
			Description: strings.TrimSpace(description),
			Features:    features,
			Entities:    issue.ExtractEntities(description),
		},
	}, nil
}

// validateProjectName rejects empty names and path-hostile characters.
func validateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("project name is required")
	}
	if strings.ContainsAny(trimmed, "/\\") || strings.Contains(trimmed, "..") {
		return errors.New("project name must not contain path separators")
	}
	return nil
}

// newWizardTheme creates a huh.Theme with the scaffold branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

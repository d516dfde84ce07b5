package issue

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/buildforge/scaffold/internal/config"
)

// Labeled fields are accepted in two heading conventions:
//
//	### Framework
//	FastAPI
//
//	**Framework:** FastAPI
//
// The first occurrence of either convention wins.
var (
	frameworkPattern = regexp.MustCompile(`(?i)###\s*Framework\s+([^\n]+)|\*\*Framework:\*\*\s+([^\n]+)`)
	databasePattern  = regexp.MustCompile(`(?i)###\s*Database\s+([^\n]+)|\*\*Database:\*\*\s+([^\n]+)`)

	// The heading form captures up to the next "###" heading; the bold form
	// captures up to the next blank-line-delimited bold field.
	descriptionPattern = regexp.MustCompile(`(?is)###\s*(?:Project\s+)?Description\s+(.+?)(?:\n###|\z)|\*\*Description:\*\*\s+(.+?)(?:\n\n\*\*|\z)`)
)

// Parse extracts a project configuration from raw issue text. It is a
// total function: it never fails, and absent fields silently take their
// defaults (Django, SQLite, empty description, the "item" entity).
func Parse(body string) config.Project {
	body = norm.NFC.String(body)

	cfg := config.Project{
		Framework:   config.FrameworkDjango,
		Database:    config.DatabaseSQLite,
		Description: "",
		Features:    []string{},
	}

	if v, ok := matchLabeledField(frameworkPattern, body); ok {
		cfg.Framework = v
	}
	if v, ok := matchLabeledField(databasePattern, body); ok {
		cfg.Database = v
	}
	if v, ok := matchLabeledField(descriptionPattern, body); ok {
		cfg.Description = v
	}

	cfg.Features = extractFeatures(body)
	cfg.Entities = ExtractEntities(cfg.Description)

	return cfg
}

// matchLabeledField runs a two-branch labeled-field pattern and returns
// the trimmed capture of whichever branch matched.
func matchLabeledField(p *regexp.Regexp, body string) (string, bool) {
	m := p.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	v := m[1]
	if v == "" {
		v = m[2]
	}
	return strings.TrimSpace(v), true
}

// extractFeatures runs the independent keyword presence checks. The checks
// are case-sensitive literals except for the extra case-insensitive "auth"
// probe; each hit appends one feature tag.
func extractFeatures(body string) []string {
	features := []string{}
	if strings.Contains(body, "User Authentication") || strings.Contains(strings.ToLower(body), "auth") {
		features = append(features, config.FeatureAuth)
	}
	if strings.Contains(body, "REST API") {
		features = append(features, config.FeatureRESTAPI)
	}
	if strings.Contains(body, "GraphQL API") {
		features = append(features, config.FeatureGraphQL)
	}
	if strings.Contains(body, "Celery") {
		features = append(features, config.FeatureCelery)
	}
	if strings.Contains(body, "Docker Support") {
		features = append(features, config.FeatureDocker)
	}
	if strings.Contains(body, "Unit Tests") {
		features = append(features, config.FeatureTests)
	}
	return features
}

package issue

import (
	"regexp"
	"strings"

	"github.com/buildforge/scaffold/internal/config"
)

// entityRow pairs a canonical entity name with the surface keywords that
// select it. Keywords are tried in order; the first hit records the
// canonical name and ends the scan of that row.
type entityRow struct {
	name     string
	patterns []*regexp.Regexp
}

// entityTable is the fixed keyword table driving entity extraction.
// Row order is part of the contract: when several entities appear in one
// description, earlier rows win the ≤3-entity cut.
var entityTable = buildEntityTable([]struct {
	name     string
	keywords []string
}{
	{"user", []string{"user", "account", "profile", "member"}},
	{"product", []string{"product", "item", "goods", "merchandise"}},
	{"order", []string{"order", "purchase", "transaction"}},
	{"post", []string{"post", "article", "blog"}},
	{"comment", []string{"comment", "review", "feedback"}},
	{"task", []string{"task", "todo", "assignment", "job"}},
	{"project", []string{"project", "workspace"}},
	{"customer", []string{"customer", "client"}},
	{"invoice", []string{"invoice", "bill", "receipt"}},
	{"payment", []string{"payment", "transaction"}},
	{"booking", []string{"booking", "reservation", "appointment"}},
	{"event", []string{"event", "meeting", "conference"}},
	{"category", []string{"category", "tag", "label"}},
	{"message", []string{"message", "chat", "conversation"}},
	{"notification", []string{"notification", "alert"}},
	{"report", []string{"report", "analytics", "statistics"}},
	{"document", []string{"document", "file", "attachment"}},
	{"inventory", []string{"inventory", "stock", "warehouse"}},
	{"employee", []string{"employee", "staff", "worker"}},
	{"department", []string{"department", "division", "team"}},
})

func buildEntityTable(rows []struct {
	name     string
	keywords []string
}) []entityRow {
	table := make([]entityRow, 0, len(rows))
	for _, row := range rows {
		patterns := make([]*regexp.Regexp, 0, len(row.keywords))
		for _, kw := range row.keywords {
			patterns = append(patterns, keywordPattern(kw))
		}
		table = append(table, entityRow{name: row.name, patterns: patterns})
	}
	return table
}

// keywordPattern compiles a whole-word pattern matching the keyword in
// singular or plural form. Regular nouns accept an optional trailing "s";
// "y"-final nouns accept the "y"→"ies" transformation instead.
func keywordPattern(kw string) *regexp.Regexp {
	if strings.HasSuffix(kw, "y") {
		base := regexp.QuoteMeta(strings.TrimSuffix(kw, "y"))
		return regexp.MustCompile(`\b` + base + `(?:y|ies)\b`)
	}
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `s?\b`)
}

// ExtractEntities scans a project description for known entity keywords
// and returns the canonical entity names in table order, capped at
// config.MaxEntities. Canonical names are recorded at most once. When
// nothing matches, the list defaults to the single "item" entity so every
// generated project has at least one CRUD surface.
func ExtractEntities(description string) []string {
	lower := strings.ToLower(description)

	var entities []string
	for _, row := range entityTable {
		if len(entities) == config.MaxEntities {
			break
		}
		for _, p := range row.patterns {
			if p.MatchString(lower) {
				entities = append(entities, row.name)
				break
			}
		}
	}

	if len(entities) == 0 {
		return []string{config.DefaultEntity}
	}
	return entities
}

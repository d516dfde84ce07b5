package issue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMetadata(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "meta.json",
			`{"issue_body": "### Framework\nFlask", "issue_title": "New project", "issue_number": 12}`)
		m, err := LoadMetadata(path)
		if err != nil {
			t.Fatalf("LoadMetadata() error = %v", err)
		}
		if m.IssueBody != "### Framework\nFlask" {
			t.Errorf("IssueBody = %q", m.IssueBody)
		}
		if m.IssueTitle != "New project" || m.IssueNumber != 12 {
			t.Errorf("title/number = %q/%d", m.IssueTitle, m.IssueNumber)
		}
	})

	t.Run("yaml by extension", func(t *testing.T) {
		path := writeFile(t, "meta.yaml", "issue_body: plain body\nissue_number: 3\n")
		m, err := LoadMetadata(path)
		if err != nil {
			t.Fatalf("LoadMetadata() error = %v", err)
		}
		if m.IssueBody != "plain body" || m.IssueNumber != 3 {
			t.Errorf("got %+v", m)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMetadata(filepath.Join(t.TempDir(), "absent.json"))
		if !errors.Is(err, ErrMetadataRead) {
			t.Errorf("error = %v, want ErrMetadataRead", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "meta.json", "{not json")
		if _, err := LoadMetadata(path); !errors.Is(err, ErrMetadataParse) {
			t.Errorf("error = %v, want ErrMetadataParse", err)
		}
	})

	t.Run("missing issue_body", func(t *testing.T) {
		path := writeFile(t, "meta.json", `{"issue_title": "no body"}`)
		if _, err := LoadMetadata(path); !errors.Is(err, ErrMissingIssueBody) {
			t.Errorf("error = %v, want ErrMissingIssueBody", err)
		}
	})

	t.Run("empty issue_body yields default extraction", func(t *testing.T) {
		path := writeFile(t, "meta.json", `{"issue_body": ""}`)
		m, err := LoadMetadata(path)
		if err != nil {
			t.Fatalf("LoadMetadata() error = %v", err)
		}
		cfg := Parse(m.IssueBody)
		if cfg.Framework != "Django" || cfg.Database != "SQLite" {
			t.Errorf("defaults = %q/%q, want Django/SQLite", cfg.Framework, cfg.Database)
		}
		if len(cfg.Entities) != 1 || cfg.Entities[0] != "item" {
			t.Errorf("entities = %v, want [item]", cfg.Entities)
		}
	})
}

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildforge/scaffold/internal/ui"
)

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return path
}

func TestResolveConfigFromMetadata(t *testing.T) {
	path := writeMetadata(t, `{
		"issue_body": "### Framework\nFastAPI\n\n### Database\nPostgreSQL\n\n### Description\nAn online shop with products and orders",
		"issue_title": "New project",
		"issue_number": 7
	}`)

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	name, cfg, err := resolveConfig([]string{"shop", path}, hm)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if name != "shop" {
		t.Errorf("project name = %q", name)
	}
	if cfg.Framework != "FastAPI" {
		t.Errorf("framework = %q", cfg.Framework)
	}
	if cfg.Database != "PostgreSQL" {
		t.Errorf("database = %q", cfg.Database)
	}
	want := []string{"product", "order"}
	if len(cfg.Entities) != len(want) {
		t.Fatalf("entities = %v, want %v", cfg.Entities, want)
	}
	for i := range want {
		if cfg.Entities[i] != want[i] {
			t.Errorf("entities[%d] = %q, want %q", i, cfg.Entities[i], want[i])
		}
	}
}

func TestResolveConfigHeadlessWithoutMetadata(t *testing.T) {
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	_, _, err := resolveConfig([]string{"shop"}, hm)
	if !errors.Is(err, ErrInteractiveUnavailable) {
		t.Errorf("resolveConfig() error = %v, want ErrInteractiveUnavailable", err)
	}
}

func TestGenerateCommandEndToEnd(t *testing.T) {
	path := writeMetadata(t, `{"issue_body": "### Framework\nFlask\n\n### Description\nTask tracker for tasks and projects"}`)
	out := t.TempDir()

	rootCmd.SetArgs([]string{"generate", "tracker", path, "--output", out, "--no-color", "--non-interactive"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	appPy, err := os.ReadFile(filepath.Join(out, "tracker", "app.py"))
	if err != nil {
		t.Fatalf("generated app.py missing: %v", err)
	}
	if len(appPy) == 0 {
		t.Error("generated app.py is empty")
	}
	if _, err := os.Stat(filepath.Join(out, "tracker", "requirements.txt")); err != nil {
		t.Errorf("generated requirements.txt missing: %v", err)
	}
}

func TestGenerateCommandUnreadableMetadata(t *testing.T) {
	rootCmd.SetArgs([]string{"generate", "demo", filepath.Join(t.TempDir(), "missing.json"), "--no-color", "--non-interactive"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() expected error for missing metadata file")
	}
}

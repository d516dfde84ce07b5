package issue

import (
	"reflect"
	"testing"

	"github.com/buildforge/scaffold/internal/config"
)

func TestParseLabeledFields(t *testing.T) {
	t.Run("heading_convention", func(t *testing.T) {
		body := "### Framework\nFastAPI\n\n### Database\nPostgreSQL\n\n### Description\nTask tracking application\n"
		cfg := Parse(body)
		if cfg.Framework != "FastAPI" {
			t.Errorf("Framework = %q, want FastAPI", cfg.Framework)
		}
		if cfg.Database != "PostgreSQL" {
			t.Errorf("Database = %q, want PostgreSQL", cfg.Database)
		}
		if cfg.Description != "Task tracking application" {
			t.Errorf("Description = %q", cfg.Description)
		}
	})

	t.Run("bold_convention", func(t *testing.T) {
		body := "**Framework:** Flask\n\n**Database:** MongoDB\n\n**Description:** Blog with posts\n\n**Priority:** high"
		cfg := Parse(body)
		if cfg.Framework != "Flask" {
			t.Errorf("Framework = %q, want Flask", cfg.Framework)
		}
		if cfg.Database != "MongoDB" {
			t.Errorf("Database = %q, want MongoDB", cfg.Database)
		}
		if cfg.Description != "Blog with posts" {
			t.Errorf("Description = %q", cfg.Description)
		}
	})

	t.Run("heading_description_stops_at_next_heading", func(t *testing.T) {
		body := "### Project Description\nE-commerce with products\nand orders\n### Framework\nDjango"
		cfg := Parse(body)
		want := "E-commerce with products\nand orders"
		if cfg.Description != want {
			t.Errorf("Description = %q, want %q", cfg.Description, want)
		}
	})

	t.Run("case_insensitive_labels", func(t *testing.T) {
		cfg := Parse("### framework\nfastapi\n")
		if cfg.Framework != "fastapi" {
			t.Errorf("Framework = %q, want fastapi", cfg.Framework)
		}
	})
}

func TestParseDefaults(t *testing.T) {
	cfg := Parse("")
	if cfg.Framework != config.FrameworkDjango {
		t.Errorf("Framework default = %q, want Django", cfg.Framework)
	}
	if cfg.Database != config.DatabaseSQLite {
		t.Errorf("Database default = %q, want SQLite", cfg.Database)
	}
	if cfg.Description != "" {
		t.Errorf("Description default = %q, want empty", cfg.Description)
	}
	if len(cfg.Features) != 0 {
		t.Errorf("Features default = %v, want empty", cfg.Features)
	}
	if !reflect.DeepEqual(cfg.Entities, []string{"item"}) {
		t.Errorf("Entities default = %v, want [item]", cfg.Entities)
	}
}

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			"all_features",
			"User Authentication REST API GraphQL API Celery Docker Support Unit Tests",
			[]string{"auth", "rest_api", "graphql", "celery", "docker", "tests"},
		},
		{
			"auth_case_insensitive",
			"We need OAuth support",
			[]string{"auth"},
		},
		{
			"literals_are_case_sensitive",
			"rest api graphql api celery docker support unit tests",
			nil,
		},
		{
			"none",
			"A plain project",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFeatures(tt.body)
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractFeatures(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestParseFeatureAndEntityFlow(t *testing.T) {
	body := "### Framework\nFastAPI\n\n### Description\nE-commerce with products and orders\n\nREST API\nDocker Support"
	cfg := Parse(body)

	if !reflect.DeepEqual(cfg.Entities, []string{"product", "order"}) {
		t.Errorf("Entities = %v, want [product order]", cfg.Entities)
	}
	if !cfg.HasFeature(config.FeatureRESTAPI) || !cfg.HasFeature(config.FeatureDocker) {
		t.Errorf("Features = %v, want rest_api and docker", cfg.Features)
	}
}

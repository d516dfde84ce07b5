package config

import (
	"fmt"
	"strings"
)

// Framework display names as they appear in extracted configuration.
const (
	FrameworkDjango  = "Django"
	FrameworkFlask   = "Flask"
	FrameworkFastAPI = "FastAPI"
)

// Database display names recognized by the generators. Unrecognized values
// are carried through verbatim; generators fall back to their SQLite
// settings block when they need a concrete configuration.
const (
	DatabaseSQLite     = "SQLite"
	DatabasePostgreSQL = "PostgreSQL"
	DatabaseMySQL      = "MySQL"
	DatabaseMongoDB    = "MongoDB"
)

// Feature tags appended by the extractor.
const (
	FeatureAuth    = "auth"
	FeatureRESTAPI = "rest_api"
	FeatureGraphQL = "graphql"
	FeatureCelery  = "celery"
	FeatureDocker  = "docker"
	FeatureTests   = "tests"
)

// MaxEntities caps the entity list so generated projects stay manageable.
const MaxEntities = 3

// DefaultEntity is the fallback when no entity keyword matches.
const DefaultEntity = "item"

// Project is the configuration for one generation run. It is built once
// from raw issue text and never mutated afterwards.
type Project struct {
	Framework   string   `json:"framework" yaml:"framework"`
	Database    string   `json:"database" yaml:"database"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Entities    []string `json:"entities" yaml:"entities"`
}

// Kind identifies one of the supported generation paths.
type Kind int

const (
	KindDjango Kind = iota
	KindFlask
	KindFastAPI
)

// String returns the display name of the framework kind.
func (k Kind) String() string {
	switch k {
	case KindDjango:
		return FrameworkDjango
	case KindFlask:
		return FrameworkFlask
	case KindFastAPI:
		return FrameworkFastAPI
	default:
		return "unknown"
	}
}

// Kind resolves the configured framework to a generation path. Matching is
// a case-insensitive substring test so values like "Django 4.2" or
// "fastapi (latest)" still dispatch correctly. An unrecognized value
// returns ErrUnknownFramework; callers must treat that as fatal.
func (p Project) Kind() (Kind, error) {
	fw := strings.ToLower(p.Framework)
	switch {
	case strings.Contains(fw, "django"):
		return KindDjango, nil
	case strings.Contains(fw, "flask"):
		return KindFlask, nil
	case strings.Contains(fw, "fastapi"):
		return KindFastAPI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFramework, p.Framework)
	}
}

// HasFeature reports whether the given feature tag was extracted.
func (p Project) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

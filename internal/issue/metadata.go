// Package issue loads issue-tracker metadata and extracts a project
// configuration from the free-form issue body. Extraction is heuristic:
// labeled fields select framework and database, literal keywords select
// features, and a fixed keyword table selects up to three entities.
package issue

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for metadata loading.
var (
	// ErrMetadataRead indicates the metadata file could not be read.
	ErrMetadataRead = errors.New("issue: metadata file not readable")

	// ErrMetadataParse indicates the metadata file is not valid JSON/YAML.
	ErrMetadataParse = errors.New("issue: malformed metadata")

	// ErrMissingIssueBody indicates the metadata carries no issue_body field.
	ErrMissingIssueBody = errors.New("issue: metadata missing issue_body")
)

// Metadata is the issue payload read from the metadata file. Only
// issue_body is required; title and number are carried for display.
type Metadata struct {
	IssueBody   string `json:"issue_body" yaml:"issue_body"`
	IssueTitle  string `json:"issue_title" yaml:"issue_title"`
	IssueNumber int    `json:"issue_number" yaml:"issue_number"`
}

// rawMetadata decodes issue_body as a pointer so an absent key can be
// told apart from an empty one. An empty body is valid: extraction
// proceeds on defaults.
type rawMetadata struct {
	IssueBody   *string `json:"issue_body" yaml:"issue_body"`
	IssueTitle  string  `json:"issue_title" yaml:"issue_title"`
	IssueNumber int     `json:"issue_number" yaml:"issue_number"`
}

// LoadMetadata reads and decodes a metadata file. The format is selected
// by extension: .yaml/.yml decode as YAML, everything else as JSON.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	var raw rawMetadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
		}
	}

	if raw.IssueBody == nil {
		return nil, ErrMissingIssueBody
	}
	return &Metadata{
		IssueBody:   *raw.IssueBody,
		IssueTitle:  raw.IssueTitle,
		IssueNumber: raw.IssueNumber,
	}, nil
}

// Package config defines the project configuration extracted from issue
// metadata and the framework dispatch used to select a generation path.
package config

import "errors"

// Sentinel errors for configuration handling.
var (
	// ErrUnknownFramework indicates the configured framework matches none of
	// the supported generation paths. This is fatal: generation must not
	// silently fall back to a default framework.
	ErrUnknownFramework = errors.New("config: unknown framework")
)

// Package defaults provides centralized configuration constants for the
// cookbook service.
//
// This package defines timeout values and resolver ceilings used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/devdonalds/cookbook/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SummaryHandlerTimeout)
//	defer cancel()
package defaults

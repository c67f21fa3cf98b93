// Package cli implements the command-line interface for the cookbook tooling.
//
// # Commands
//
// serve - Run the cookbook HTTP server:
//
//	cookctl serve [--port 8080]
//
// Runs the HTTP API with an in-memory entry store. Shuts down gracefully
// on SIGINT/SIGTERM.
//
// parse - Normalize a handwritten entry name:
//
//	cookctl parse "Riz@z RISO00tto!"
//
// Prints the cleaned-up, title-cased name.
//
// check - Validate a cookbook file offline:
//
//	cookctl check --file entries.yaml [--summary NAME] [--strict]
//
// Loads a list of entries from a YAML or JSON file, admits each one in
// order into a fresh store with the same rules the server applies, and
// reports the per-entry outcome. With --summary, additionally flattens
// the named recipe into base ingredients and total cook time.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, --strict rejection)
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/cookbook
// for admission and resolution, pkg/parser for name normalization,
// pkg/server for the HTTP surface, and pkg/serializer for output
// formatting.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/devdonalds/cookbook/pkg/cli.version=1.0.0'"
package cli

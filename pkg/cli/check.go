package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

// EntryOutcome is the per-entry result of a batch check.
type EntryOutcome struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Admitted bool   `json:"admitted" yaml:"admitted"`
	Code     string `json:"code,omitempty" yaml:"code,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CheckReport is the output of the check command.
type CheckReport struct {
	File     string            `json:"file" yaml:"file"`
	Total    int               `json:"total" yaml:"total"`
	Admitted int               `json:"admitted" yaml:"admitted"`
	Rejected int               `json:"rejected" yaml:"rejected"`
	Outcomes []EntryOutcome    `json:"outcomes" yaml:"outcomes"`
	Summary  *cookbook.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate a cookbook file without running the server",
		Description: `Load a list of entries from a YAML or JSON file (format detected from
the extension), validate and admit each one in order into a fresh
in-memory store, and report the outcome per entry.

Entries are admitted with the same rules the server applies: unique
names, non-negative cook times, no duplicate required items. Later
entries may reference earlier ones.

With --summary, additionally flatten the named recipe into its base
ingredients and total cook time.

Examples:
  cookctl check --file entries.yaml
  cookctl check --file entries.json --summary Bread --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the entry list (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: "Recipe name to summarize after admission",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail with a non-zero exit code when any entry is rejected",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			path := cmd.String("file")
			payloads, err := serializer.FromFile[[]cookbook.EntryPayload](path)
			if err != nil {
				return fmt.Errorf("failed to load entries from %q: %w", path, err)
			}

			report, store := runCheck(path, *payloads)

			if recipeName := cmd.String("summary"); recipeName != "" {
				summary, err := cookbook.Summarize(store, cookbook.NewResolver(store), recipeName)
				if err != nil {
					return fmt.Errorf("failed to summarize %q: %w", recipeName, err)
				}
				report.Summary = summary
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return err
			}

			if cmd.Bool("strict") && report.Rejected > 0 {
				return fmt.Errorf("%d of %d entries rejected", report.Rejected, report.Total)
			}
			return nil
		},
	}
}

// runCheck admits each payload in order into a fresh store and records
// the outcome. Admission order matters: a duplicate name is rejected
// even when the earlier occurrence was itself valid. The populated
// store is returned so callers can run queries against it.
func runCheck(path string, payloads []cookbook.EntryPayload) (*CheckReport, *cookbook.Store) {
	store := cookbook.NewStore()
	report := &CheckReport{
		File:     path,
		Total:    len(payloads),
		Outcomes: make([]EntryOutcome, 0, len(payloads)),
	}

	for i := range payloads {
		p := &payloads[i]
		outcome := EntryOutcome{
			Name: p.Name,
			Type: p.Type,
		}

		if err := cookbook.CreateEntry(store, p); err != nil {
			outcome.Code = string(errors.CodeOf(err))
			outcome.Error = err.Error()
			report.Rejected++
		} else {
			outcome.Admitted = true
			report.Admitted++
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, store
}

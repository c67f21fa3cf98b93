package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/parser"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Normalize a handwritten entry name",
		ArgsUsage:             "NAME",
		Description: `Clean up a handwritten entry name: collapse runs of whitespace,
underscores, and hyphens to single spaces, strip everything that is not
a letter, and title-case each word.

Example:
  cookctl parse "Riz@z RISO00tto!"
  Rizz Risotto`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one NAME argument, got %d", cmd.Args().Len())
			}

			msg, err := parser.ParseName(cmd.Args().First())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Root().Writer, msg)
			return nil
		},
	}
}

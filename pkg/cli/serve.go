package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the cookbook HTTP server",
		Description: `Run the cookbook HTTP API. The entry store is in-memory and lives for
the lifetime of the process.

Listens on port 8080 by default; override with --port or the PORT
environment variable. Shuts down gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			if port := cmd.Int("port"); port > 0 {
				cfg.Port = int(port)
			}

			s := server.New(server.WithConfig(cfg))
			return s.Run(ctx)
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/cspoet/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	flags := &commands.Flags{}
	ctrl := &commands.Controller{
		Flags: flags,
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "path to cspoet.yaml (default: search the current directory and its parents)",
		Destination: &flags.ConfigPath,
	}

	app := &cli.Command{
		Name:    "cspoet",
		Usage:   "Generate C# sources from schema files",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CSPOET_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, errors.Wrap(err, "parse log level")
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create cspoet.yaml and a sample schema in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "generate",
				Usage: "Generate C# files from the project schemas",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						Usage:       "output directory, overrides the config file",
						Destination: &flags.Output,
					},
					&cli.BoolFlag{
						Name:        "dry-run",
						Usage:       "print the generated files instead of writing them",
						Destination: &flags.DryRun,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Generate, then regenerate whenever a schema changes",
				Flags: []cli.Flag{configFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "targets",
				Usage: "List the supported generator targets",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Targets(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		event := log.Error().Err(err)
		if hint := errors.FlattenHints(err); hint != "" {
			event = event.Str("hint", hint)
		}
		event.Msg("cspoet failed")
		os.Exit(1)
	}
}

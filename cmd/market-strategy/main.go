package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "market-strategy",
		Usage: "Run trading handlers on a New York time schedule",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Evaluate the schedule every minute until interrupted",
				Flags:  append(appFlags(), listenFlag()),
				Action: runAction,
			},
			{
				Name:   "tick",
				Usage:  "Evaluate the schedule once and print the dispatch report",
				Flags:  appFlags(),
				Action: tickAction,
			},
			{
				Name:   "validate",
				Usage:  "Validate a schedule file and print today's windows",
				Flags:  []cli.Flag{configFlag()},
				Action: validateAction,
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the schedule file or the provider config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Schema to print (schedule or provider)",
						Value: schemaSchedule,
					},
				},
				Action: schemaAction,
			},
			{
				Name:   "version",
				Usage:  "Print the build version",
				Action: versionAction,
			},
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the schedule file",
		Value:   "schedule.yaml",
	}
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Dotenv file with the brokerage credentials",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:  "provider-config",
			Usage: "JSON provider config used instead of the ALPACA_* environment variables",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "Human-readable debug logging",
		},
	}
}

func listenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "listen",
		Usage: "Address of the status server (/healthz, /metrics, /status); empty disables it",
		Value: ":9090",
	}
}

func optionsFrom(cmd *cli.Command) appOptions {
	return appOptions{
		configPath:     cmd.String("config"),
		envFile:        cmd.String("env-file"),
		providerConfig: cmd.String("provider-config"),
		development:    cmd.Bool("dev"),
	}
}

// Copyright 2025 SIH-25 contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	agriassist "github.com/mGaurav-dev/SIH-25"
	"github.com/mGaurav-dev/SIH-25/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "agriassist",
		Usage: "Multilingual agricultural question answering with retrieval-augmented generation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Load a JSONL knowledge source into the vector index",
				ArgsUsage: "<source.jsonl>",
				Action:    ingestCommand,
			},
			{
				Name:   "ask",
				Usage:  "Answer a farmer's question",
				Action: askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "The question, in any supported language",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "location",
						Usage:    "The farmer's location, for weather and regional advice",
						Required: true,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show knowledge index statistics",
				Action: statsCommand,
			},
			{
				Name:   "cleanup-audio",
				Usage:  "Remove stored audio older than the configured maximum age",
				Action: cleanupAudioCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openSystem builds a System from the config file and global flag overrides.
func openSystem(c *cli.Context) (*agriassist.System, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if dbPath := c.String("db"); dbPath != "" {
		cfg.DB.Path = dbPath
	}

	system, err := agriassist.NewSystem(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start system: %w", err)
	}
	return system, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file argument")
	}
	sourcePath := c.Args().First()

	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer source.Close()

	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	fmt.Fprintf(os.Stderr, "Source: %s\n", sourcePath)

	report, err := system.Ingest(context.Background(), source, os.Stderr)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Added: %d\nSkipped: %d\nFailed: %d\n",
		report.Added, report.Skipped, report.Failed)
	return nil
}

func askCommand(c *cli.Context) error {
	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	qc, err := system.Ask(context.Background(), c.String("query"), c.String("location"))
	if err != nil {
		return err
	}

	fmt.Println(qc.FinalAnswer)
	for _, artifact := range qc.Artifacts {
		fmt.Fprintf(os.Stderr, "audio (%s): %s (%d bytes)\n",
			artifact.Language, artifact.StorageRef, artifact.ByteSize)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	count, err := system.DocumentCount(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Documents: %d\n", count)
	return nil
}

func cleanupAudioCommand(c *cli.Context) error {
	system, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	removed, err := system.CleanupAudio(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Removed: %d\n", removed)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

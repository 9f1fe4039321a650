// Command pagepack encodes and decodes compact page lists: the mapping from
// image file extension to the page numbers stored in that format.
//
// Usage:
//
//	pagepack [global options] encode [-i mapping.json] [-o pages.bin] [--page-amount N] [--trusted]
//	pagepack [global options] decode [-i pages.bin] [-o mapping.yaml] [--format json|yaml] [--secure]
//	pagepack [global options] inspect [-i pages.bin]
//	pagepack [global options] scan [-o pages.bin] [--fold-case] <dir>
//	pagepack version
//
// Global options:
//
//	--config string       Config file (default ~/.config/pagepack/config.yaml)
//	--log-level string    debug, info, warn, error (default "info")
//	--log-format string   text, json, pretty (default "pretty")
//
// Mapping files are JSON or YAML objects keyed by extension:
//
//	{"jpg": [1, 2, 4], "png": [3]}
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/blockberries/pagepack/internal/logger"
)

// cfg holds the loaded config file; subcommands apply it to flags left unset.
var cfg Config

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "pagepack:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "pagepack",
		Usage:  "Compact page-list codec for image archives",
		Flags:  globalFlags(),
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			encodeCmd(),
			decodeCmd(),
			inspectCmd(),
			scanCmd(),
			versionCmd(),
		},
	}
}

// setup loads the config file and installs the logger in the context.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	loaded, err := LoadConfig(configFile)
	if err != nil {
		return ctx, err
	}
	cfg = loaded
	applyLoggingConfig(cmd, cfg, &logLevel, &logFormat)

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return ctx, err
	}
	format, err := logger.ParseFormat(logFormat)
	if err != nil {
		return ctx, err
	}
	log := logger.New(os.Stderr, format, level)
	if configFile != "" {
		log.Debug("loaded config", "path", configFile)
	}
	return logger.WithContext(ctx, log), nil
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/blockberries/pagepack/internal/logger"
	"github.com/blockberries/pagepack/pkg/pagelist"
)

func encodeCmd() *cli.Command {
	var (
		input, output, format string
		pageAmount            int
		trusted               bool
	)

	return &cli.Command{
		Name:  "encode",
		Usage: "Encode a JSON or YAML mapping into a page-list stream",
		Flags: []cli.Flag{
			inputFlag(&input, "mapping file"),
			outputFlag(&output, "stream file"),
			formatFlag(&format),
			&cli.IntFlag{
				Name:        "page-amount",
				Aliases:     []string{"n"},
				Usage:       "total page count (default: highest page in the mapping)",
				Destination: &pageAmount,
			},
			&cli.BoolFlag{
				Name:        "trusted",
				Usage:       "skip partition validation",
				Destination: &trusted,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBool(cmd, "trusted", cfg.Trusted, &trusted)
			log := logger.FromContext(ctx).With("cmd", "encode")

			mf, err := detectFormat(format, input, formatJSON)
			if err != nil {
				return err
			}
			data, err := readInput(input)
			if err != nil {
				return fmt.Errorf("read mapping: %w", err)
			}
			images, err := parseMapping(data, mf)
			if err != nil {
				return err
			}

			opts := pagelist.EncodeOptions{PageAmount: pageAmount}
			if trusted {
				opts.Mode = pagelist.Trusted
			}
			encoded, err := pagelist.EncodeWithOptions(images, opts)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if err := writeOutput(output, encoded); err != nil {
				return fmt.Errorf("write stream: %w", err)
			}
			log.Info("encoded",
				"groups", len(images),
				"pages", images.TotalPages(),
				"bytes", len(encoded),
				"mode", opts.Mode,
			)
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/blockberries/pagepack/internal/logger"
	"github.com/blockberries/pagepack/pkg/pagelist"
)

func decodeCmd() *cli.Command {
	var (
		input, output, format string
		secure                bool
	)

	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a page-list stream into a JSON or YAML mapping",
		Flags: []cli.Flag{
			inputFlag(&input, "stream file"),
			outputFlag(&output, "mapping file"),
			formatFlag(&format),
			&cli.BoolFlag{
				Name:        "secure",
				Usage:       "decode with strict size limits for untrusted input",
				Destination: &secure,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBool(cmd, "secure", cfg.Secure, &secure)
			if cfg.OutputFormat != "" && !cmd.IsSet("format") && output == "" {
				format = cfg.OutputFormat
			}
			log := logger.FromContext(ctx).With("cmd", "decode")

			mf, err := detectFormat(format, output, formatJSON)
			if err != nil {
				return err
			}
			data, err := readInput(input)
			if err != nil {
				return fmt.Errorf("read stream: %w", err)
			}

			images, err := pagelist.DecodeWithOptions(data, decodeOptions(secure))
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			out, err := formatMapping(images, mf)
			if err != nil {
				return fmt.Errorf("format mapping: %w", err)
			}
			if err := writeOutput(output, out); err != nil {
				return fmt.Errorf("write mapping: %w", err)
			}
			log.Debug("decoded",
				"groups", len(images),
				"page_amount", images.PageAmount(),
				"bytes", len(data),
			)
			return nil
		},
	}
}

func decodeOptions(secure bool) pagelist.DecodeOptions {
	if secure {
		return pagelist.SecureDecodeOptions
	}
	return pagelist.DefaultDecodeOptions
}

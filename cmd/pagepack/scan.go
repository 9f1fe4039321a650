package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/blockberries/pagepack/internal/logger"
	"github.com/blockberries/pagepack/pkg/pagelist"
)

func scanCmd() *cli.Command {
	var (
		output   string
		foldCase bool
	)

	return &cli.Command{
		Name:      "scan",
		Usage:     "Encode the page list of a directory of <page>.<ext> images",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			outputFlag(&output, "stream file"),
			&cli.BoolFlag{
				Name:        "fold-case",
				Usage:       "treat extensions that differ only in case as one (JPG, jpg)",
				Destination: &foldCase,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBool(cmd, "fold-case", cfg.FoldCase, &foldCase)
			log := logger.FromContext(ctx).With("cmd", "scan")

			dir := cmd.Args().First()
			if dir == "" {
				return cli.Exit("scan: missing directory argument", 2)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.Type().IsRegular() {
					names = append(names, e.Name())
				}
			}

			images, skipped, err := groupPages(names, foldCase)
			for _, name := range skipped {
				log.Warn("skipped file", "name", name)
			}
			if err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}
			encoded, err := pagelist.Encode(images)
			if err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}
			if err := writeOutput(output, encoded); err != nil {
				return fmt.Errorf("write stream: %w", err)
			}
			log.Info("encoded directory",
				"dir", dir,
				"groups", len(images),
				"pages", images.TotalPages(),
				"bytes", len(encoded),
			)
			return nil
		},
	}
}

var errNoPages = errors.New("no page files found")

// groupPages groups file names of the form <page>.<ext> by extension. The
// page is a decimal number, possibly zero-padded; the extension is
// everything after the first dot and may be empty. Names without a numeric
// page are returned in skipped. Two files for the same page are an error.
func groupPages(names []string, foldCase bool) (images pagelist.Images, skipped []string, err error) {
	var fold cases.Caser
	if foldCase {
		fold = cases.Lower(language.Und)
	}

	byExt := make(map[string][]int)
	owner := make(map[int]string)
	for _, name := range names {
		stem, ext, _ := strings.Cut(name, ".")
		page, ok := parsePage(stem)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		if page > pagelist.MaxPageAmount {
			return nil, skipped, fmt.Errorf("%s: page %d exceeds %d", name, page, pagelist.MaxPageAmount)
		}
		if prev, dup := owner[page]; dup {
			return nil, skipped, fmt.Errorf("%s: page %d already provided by %s", name, page, prev)
		}
		owner[page] = name
		if foldCase {
			ext = fold.String(ext)
		}
		byExt[ext] = append(byExt[ext], page)
	}
	if len(byExt) == 0 {
		return nil, skipped, errNoPages
	}
	for _, pages := range byExt {
		slices.Sort(pages)
	}
	return pagelist.FromMap(byExt), skipped, nil
}

func parsePage(s string) (int, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

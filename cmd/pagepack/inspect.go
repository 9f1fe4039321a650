package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/blockberries/pagepack/pkg/pagelist"
)

func inspectCmd() *cli.Command {
	var (
		input  string
		secure bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the header, groups and size of a page-list stream",
		Flags: []cli.Flag{
			inputFlag(&input, "stream file"),
			&cli.BoolFlag{
				Name:        "secure",
				Usage:       "decode with strict size limits for untrusted input",
				Destination: &secure,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBool(cmd, "secure", cfg.Secure, &secure)
			data, err := readInput(input)
			if err != nil {
				return fmt.Errorf("read stream: %w", err)
			}
			return writeReport(os.Stdout, data, decodeOptions(secure))
		},
	}
}

// writeReport decodes data and prints a summary of its layout.
func writeReport(w io.Writer, data []byte, opts pagelist.DecodeOptions) error {
	header, err := pagelist.DecodeHeader(data)
	if err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	images, err := pagelist.DecodeWithOptions(data, opts)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "default\t%q\n", header.DefaultExt)
	fmt.Fprintf(tw, "width\t%s\n", header.Width)
	fmt.Fprintf(tw, "page amount\t%d\n", header.PageAmount)
	fmt.Fprintf(tw, "header bytes\t%d\n", header.Size)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "EXT\tPAGES\tFIRST\tLAST")
	for _, g := range images {
		if len(g.Pages) == 0 {
			fmt.Fprintf(tw, "%q\t0\t-\t-\n", g.Ext)
			continue
		}
		fmt.Fprintf(tw, "%q\t%d\t%d\t%d\n", g.Ext, len(g.Pages), g.Pages[0], g.Pages[len(g.Pages)-1])
	}
	fmt.Fprintln(tw)

	baseline := packedVarintSize(images)
	fmt.Fprintf(tw, "encoded bytes\t%d\n", len(data))
	fmt.Fprintf(tw, "protobuf bytes\t%d\n", baseline)
	if baseline > 0 {
		fmt.Fprintf(tw, "ratio\t%.3f\n", float64(len(data))/float64(baseline))
	}
	return tw.Flush()
}

// packedVarintSize is the size of images as repeated protobuf entries of
// {1: ext, 2: packed varint pages}.
func packedVarintSize(images pagelist.Images) int {
	n := 0
	for _, g := range images {
		packed := 0
		for _, p := range g.Pages {
			packed += protowire.SizeVarint(uint64(p))
		}
		entry := protowire.SizeTag(1) + protowire.SizeBytes(len(g.Ext)) +
			protowire.SizeTag(2) + protowire.SizeBytes(packed)
		n += protowire.SizeTag(1) + protowire.SizeBytes(entry)
	}
	return n
}

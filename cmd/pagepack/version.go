package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/blockberries/pagepack/pkg/pagelist"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("pagepack %s\n", pagelist.VersionInfo())
			fmt.Printf("go:       %s\n", runtime.Version())
			return nil
		},
	}
}

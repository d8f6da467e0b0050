package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spechtlabs/lintkit/internal/config"
)

func newCheckConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config [file]...",
		Short: "Validate configuration files; without arguments the one lintkit would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if cfg.Path == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "no configuration file found; defaults apply")
					return nil
				}
				args = []string{cfg.Path}
			}
			return checkFiles(cmd, args)
		},
	}
}

// checkFiles validates every file concurrently and prints one line per file
// in argument order.
func checkFiles(cmd *cobra.Command, paths []string) error {
	results := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	var failed []error
	for i, path := range paths {
		if err := results[i]; err != nil {
			fmt.Fprintf(out, "%s %s\n%v\n", color.RedString("FAIL"), path, err)
			failed = append(failed, fmt.Errorf("%s: invalid", path))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), path)
	}
	return errors.Join(failed...)
}

func checkFile(path string) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

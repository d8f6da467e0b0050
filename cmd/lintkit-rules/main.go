// Command lintkit-rules prints the lintkit rule catalogue and validates
// configuration files.
//
//	lintkit-rules list [--category security] [--all]
//	lintkit-rules describe LK1004
//	lintkit-rules check-config .lintkit.yaml ci/.lintkit.toml
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	_ "github.com/spechtlabs/lintkit/analyzers"
	"github.com/spechtlabs/lintkit/internal/version"
)

func newRootCmd() *cobra.Command {
	var colorMode string

	root := &cobra.Command{
		Use:          "lintkit-rules",
		Short:        "Browse lintkit rules and check configuration files",
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch colorMode {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newListCmd(), newDescribeCmd(), newCheckConfigCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

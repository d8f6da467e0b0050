package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spechtlabs/lintkit/internal/rule"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <rule>...",
		Short: "Show the documentation of rules, by name or ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, key := range args {
				d, ok := rule.Lookup(key)
				if !ok {
					return fmt.Errorf("unknown rule %q", key)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				describe(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func describe(out io.Writer, d *rule.Descriptor) {
	bold := color.New(color.Bold)
	bold.Fprintf(out, "%s %s\n", d.ID, d.Name)
	fmt.Fprintf(out, "  severity: %s\n", paintSeverity(d.Severity))
	fmt.Fprintf(out, "  category: %s\n", d.Category)
	fmt.Fprintf(out, "  default:  %s\n", enabledText(d.EnabledByDefault))
	if d.Doc == "" {
		fmt.Fprintf(out, "\n  %s\n", d.Title)
		return
	}
	fmt.Fprintln(out)
	for line := range strings.SplitSeq(strings.TrimSpace(d.Doc), "\n") {
		fmt.Fprintln(out, strings.TrimRight("  "+line, " "))
	}
}

func enabledText(on bool) string {
	if on {
		return color.GreenString("enabled")
	}
	return color.New(color.Faint).Sprint("disabled")
}

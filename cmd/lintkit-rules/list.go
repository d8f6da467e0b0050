package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spechtlabs/lintkit/internal/rule"
)

var severityColors = map[rule.Severity]*color.Color{
	rule.Info:     color.New(color.FgBlue),
	rule.Minor:    color.New(color.FgCyan),
	rule.Major:    color.New(color.FgYellow),
	rule.Critical: color.New(color.FgRed),
	rule.Blocker:  color.New(color.FgRed, color.Bold),
}

func paintSeverity(s rule.Severity) string {
	if c, ok := severityColors[s]; ok {
		return c.Sprint(s)
	}
	return s.String()
}

func newListCmd() *cobra.Command {
	var (
		category string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules with their ID, severity and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd.OutOrStdout(), rule.Category(category), all)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list rules of this category (security|reliability|maintainability)")
	cmd.Flags().BoolVar(&all, "all", false, "include rules that are disabled by default")
	return cmd
}

func listRules(out io.Writer, category rule.Category, all bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEVERITY\tCATEGORY\tTITLE")
	for _, d := range rule.Descriptors() {
		if category != "" && d.Category != category {
			continue
		}
		if !all && !d.EnabledByDefault {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, paintSeverity(d.Severity), d.Category, d.Title)
	}
	return w.Flush()
}

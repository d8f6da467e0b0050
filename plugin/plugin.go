//go:build ignore

// Package main provides a Go plugin exporting the lintkit analyzers for
// golangci-lint versions that load .so plugins.
//
// Build as a plugin:
//
//	go build -buildmode=plugin -o lintkit.so ./plugin
//
// Then configure golangci-lint:
//
//	linters-settings:
//	  custom:
//	    lintkit:
//	      path: ./lintkit.so
//	      description: tracker based security and reliability rules
//	      original-url: github.com/spechtlabs/lintkit
//
// The .lintkit.yaml of the working directory is honored as by the lintkit
// command. This file is excluded from normal builds.
package main

import (
	"fmt"
	"os"

	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/analyzers"
	"github.com/spechtlabs/lintkit/customrule"
	"github.com/spechtlabs/lintkit/internal/config"
)

// AnalyzerPlugin exports the analyzers for golangci-lint plugin system.
var AnalyzerPlugin analyzerPlugin

type analyzerPlugin struct{}

// GetAnalyzers returns the configured lintkit analyzers. On a configuration
// error it reports to stderr and falls back to the defaults.
func (analyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintkit: %v\n", err)
		return config.Default().FilterAnalyzers(analyzers.All())
	}

	all := analyzers.All()
	if custom, err := customrule.Build(cfg.CustomRules); err != nil {
		fmt.Fprintf(os.Stderr, "lintkit: %v\n", err)
	} else {
		all = append(all, custom...)
	}
	if err := cfg.Apply(all); err != nil {
		fmt.Fprintf(os.Stderr, "lintkit: %v\n", err)
	}
	return cfg.FilterAnalyzers(all)
}

// main is a no-op; this package is meant to be built with -buildmode=plugin.
func main() {}

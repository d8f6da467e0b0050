// Package lintkit provides golangci-lint v2 module plugin integration.
//
// This file registers lintkit as a module plugin for golangci-lint v2.
// To use lintkit with golangci-lint, you need to build a custom binary:
//
//  1. Create a .custom-gcl.yml file referencing this module
//  2. Run: golangci-lint custom
//  3. Use the generated ./custom-gcl binary
//
// Plugin settings:
//
//	linters:
//	  settings:
//	    custom:
//	      lintkit:
//	        type: module
//	        settings:
//	          config: .lintkit.yaml
//	          disabled: [todotracker]
//	          params:
//	            paramcount: {max: 5}
//
// See https://golangci-lint.run/plugins/module-plugins/ for more details.
package lintkit

import (
	"fmt"
	"sync"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/analyzers"
	"github.com/spechtlabs/lintkit/customrule"
	"github.com/spechtlabs/lintkit/internal/config"
)

//nolint:gochecknoinits // Required for golangci-lint module plugin registration
func init() {
	register.Plugin("lintkit", New)
}

// Settings configures the plugin from the golangci-lint configuration.
type Settings struct {
	// Config is the path of a lintkit configuration file. Empty means the
	// usual search from the working directory.
	Config string `json:"config"`
	// Disabled lists rule names or IDs to skip.
	Disabled []string `json:"disabled"`
	// Params sets rule parameters, overriding the configuration file.
	Params map[string]map[string]any `json:"params"`
}

type plugin struct {
	settings Settings

	once      sync.Once
	analyzers []*analysis.Analyzer
	err       error
}

// New creates a new lintkit plugin instance.
func New(conf any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](conf)
	if err != nil {
		return nil, fmt.Errorf("lintkit settings: %w", err)
	}
	return &plugin{settings: s}, nil
}

// BuildAnalyzers returns the list of analyzers to run. Custom rules are
// registered process-wide, so the list is built once.
func (p *plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	p.once.Do(func() { p.analyzers, p.err = p.build() })
	return p.analyzers, p.err
}

func (p *plugin) build() ([]*analysis.Analyzer, error) {
	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}

	custom, err := customrule.Build(cfg.CustomRules)
	if err != nil {
		return nil, err
	}

	all := append(analyzers.All(), custom...)
	if err := cfg.Apply(all); err != nil {
		return nil, err
	}
	return cfg.FilterAnalyzers(all), nil
}

// loadConfig merges the plugin settings over the configuration file.
func (p *plugin) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if p.settings.Config != "" {
		cfg, err = config.LoadFrom(p.settings.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	off := false
	for _, name := range p.settings.Disabled {
		rc := cfg.Rules[name]
		rc.Enabled = &off
		cfg.Rules[name] = rc
	}
	for name, params := range p.settings.Params {
		rc := cfg.Rules[name]
		if rc.Params == nil {
			rc.Params = make(map[string]any, len(params))
		}
		for k, v := range params {
			rc.Params[k] = v
		}
		cfg.Rules[name] = rc
	}
	return cfg, cfg.Validate()
}

// GetLoadMode returns the load mode required by the analyzers.
// The trackers resolve callees and constants, so they need TypesInfo.
func (p *plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

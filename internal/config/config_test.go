package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/internal/rule"
)

func enabled(b bool) RuleConfig { return RuleConfig{Enabled: &b} }

var (
	maxParams    = 7
	testAnalyzer = rule.New(&rule.Descriptor{
		ID:               "LK0980",
		Name:             "configtest",
		Title:            "config test",
		Severity:         rule.Major,
		EnabledByDefault: true,
		Configurable:     true,
	}, func(*rule.Context) {}, rule.WithFlags(func(fs *flag.FlagSet) {
		fs.IntVar(&maxParams, "max", maxParams, "maximum")
	}))
	optInAnalyzer = rule.New(&rule.Descriptor{
		ID:       "LK0981",
		Name:     "optintest",
		Title:    "opt-in test",
		Severity: rule.Info,
	}, func(*rule.Context) {})
)

func TestFilterAnalyzers(t *testing.T) {
	mockAnalyzers := []*analysis.Analyzer{
		{Name: "analyzer1"},
		{Name: "analyzer2"},
		{Name: "analyzer3"},
	}

	tests := []struct {
		name   string
		config *Config
		want   []string
	}{
		{
			name:   "nil config enables all",
			config: nil,
			want:   []string{"analyzer1", "analyzer2", "analyzer3"},
		},
		{
			name:   "default true enables all",
			config: &Config{Rules: map[string]RuleConfig{"default": enabled(true)}},
			want:   []string{"analyzer1", "analyzer2", "analyzer3"},
		},
		{
			name:   "default false disables all",
			config: &Config{Rules: map[string]RuleConfig{"default": enabled(false)}},
			want:   []string{},
		},
		{
			name: "disable specific analyzer",
			config: &Config{Rules: map[string]RuleConfig{
				"default":   enabled(true),
				"analyzer2": enabled(false),
			}},
			want: []string{"analyzer1", "analyzer3"},
		},
		{
			name: "enable specific analyzers when default is false",
			config: &Config{Rules: map[string]RuleConfig{
				"default":   enabled(false),
				"analyzer1": enabled(true),
				"analyzer3": {Severity: "major"},
			}},
			want: []string{"analyzer1", "analyzer3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.FilterAnalyzers(mockAnalyzers)
			if len(got) != len(tt.want) {
				t.Errorf("FilterAnalyzers() returned %d analyzers, want %d", len(got), len(tt.want))
				return
			}
			for i, a := range got {
				if a.Name != tt.want[i] {
					t.Errorf("FilterAnalyzers()[%d].Name = %q, want %q", i, a.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFilterAnalyzersRegistered(t *testing.T) {
	all := []*analysis.Analyzer{testAnalyzer, optInAnalyzer}

	tests := []struct {
		name   string
		config *Config
		want   []string
	}{
		{
			name:   "rule defaults",
			config: Default(),
			want:   []string{"configtest"},
		},
		{
			name:   "opt in by rule ID",
			config: &Config{Rules: map[string]RuleConfig{"lk0981": enabled(true)}},
			want:   []string{"configtest", "optintest"},
		},
		{
			name:   "min severity",
			config: &Config{MinSeverity: "critical"},
			want:   []string{},
		},
		{
			name: "raised severity passes min severity",
			config: &Config{
				MinSeverity: "critical",
				Rules:       map[string]RuleConfig{"configtest": {Severity: "blocker"}},
			},
			want: []string{"configtest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.FilterAnalyzers(all)
			var names []string
			for _, a := range got {
				names = append(names, a.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("FilterAnalyzers() = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestFilterAnalyzersSeverityFlag(t *testing.T) {
	t.Cleanup(func() { _ = testAnalyzer.Flags.Set("severity", "major") })

	cfg := &Config{MinSeverity: "major"}
	all := []*analysis.Analyzer{testAnalyzer}

	if got := cfg.FilterAnalyzers(all); len(got) != 1 {
		t.Fatalf("FilterAnalyzers() = %d analyzers, want 1", len(got))
	}

	if err := testAnalyzer.Flags.Set("severity", "info"); err != nil {
		t.Fatal(err)
	}
	if got := cfg.FilterAnalyzers(all); len(got) != 0 {
		t.Errorf("FilterAnalyzers() kept a rule lowered to info below min-severity major")
	}

	cfg.Rules = map[string]RuleConfig{"configtest": {Severity: "critical"}}
	if got := cfg.FilterAnalyzers(all); len(got) != 1 {
		t.Errorf("configured severity critical did not win over the flag")
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		analyzer    string
		wantEnabled bool
	}{
		{
			name:        "nil config enables unknown",
			config:      nil,
			analyzer:    "any",
			wantEnabled: true,
		},
		{
			name:        "explicitly enabled",
			config:      &Config{Rules: map[string]RuleConfig{"myanalyzer": enabled(true)}},
			analyzer:    "myanalyzer",
			wantEnabled: true,
		},
		{
			name:        "explicitly disabled",
			config:      &Config{Rules: map[string]RuleConfig{"myanalyzer": enabled(false)}},
			analyzer:    "myanalyzer",
			wantEnabled: false,
		},
		{
			name:        "uses default when not specified",
			config:      &Config{Rules: map[string]RuleConfig{"default": enabled(false)}},
			analyzer:    "other",
			wantEnabled: false,
		},
		{
			name:        "opt-in rule stays off",
			config:      nil,
			analyzer:    "optintest",
			wantEnabled: false,
		},
		{
			name:        "object form enables",
			config:      &Config{Rules: map[string]RuleConfig{"optintest": {Params: map[string]any{}}}},
			analyzer:    "optintest",
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.IsEnabled(tt.analyzer)
			if got != tt.wantEnabled {
				t.Errorf("IsEnabled(%q) = %v, want %v", tt.analyzer, got, tt.wantEnabled)
			}
		})
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	yamlPath := writeConfig(t, ".lintkit.yaml", `rules:
  default: true
  todotracker: false
  paramcount:
    severity: critical
    params:
      max: 5
exclude:
  - "**/vendor/**"
min-severity: minor
custom-rules:
  - id: LK9001
    name: nounsafe
    message: unsafe.Slice is banned
    calls: ["unsafe.Slice"]
`)
	tomlPath := writeConfig(t, ".lintkit.toml", `exclude = ["**/vendor/**"]
min-severity = "minor"

[rules]
default = true
todotracker = false

[rules.paramcount]
severity = "critical"
params = { max = 5 }

[[custom-rules]]
id = "LK9001"
name = "nounsafe"
message = "unsafe.Slice is banned"
calls = ["unsafe.Slice"]
`)

	for _, path := range []string{yamlPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}

			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			if !cfg.IsEnabled("anything") {
				t.Error("default = false, want true")
			}
			if cfg.IsEnabled("todotracker") {
				t.Error("todotracker enabled, want disabled")
			}
			pc := cfg.Rules["paramcount"]
			if pc.Severity != "critical" || pc.Enabled != nil {
				t.Errorf("paramcount = %+v", pc)
			}
			if got := pc.Params["max"]; got == nil || got != any(5) && got != any(int64(5)) {
				t.Errorf("paramcount max = %#v, want 5", got)
			}
			if len(cfg.Exclude) != 1 || cfg.MinSeverity != "minor" {
				t.Errorf("exclude = %v, min-severity = %q", cfg.Exclude, cfg.MinSeverity)
			}
			if len(cfg.CustomRules) != 1 || cfg.CustomRules[0].Calls[0] != "unsafe.Slice" {
				t.Errorf("custom rules = %+v", cfg.CustomRules)
			}
		})
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{name: "yaml rule entry", file: "c.yaml", content: "rules:\n  x: maybe\n"},
		{name: "toml rule entry", file: "c.toml", content: "[rules]\nx = 3\n"},
		{name: "toml unknown setting", file: "c.toml", content: "[rules.x]\ncolour = \"red\"\n"},
		{name: "yaml syntax", file: "c.yaml", content: "rules: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(writeConfig(t, tt.file, tt.content)); err == nil {
				t.Error("LoadFrom() succeeded, want error")
			}
		})
	}

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFrom() of a missing file succeeded")
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() {
		_ = testAnalyzer.Flags.Set("max", "7")
		_ = testAnalyzer.Flags.Set("severity", "major")
		_ = testAnalyzer.Flags.Set("exclude", "")
		_ = testAnalyzer.Flags.Set("generated", "false")
	})

	cfg := &Config{
		Generated: true,
		Exclude:   []string{"**/vendor/**", "*_mock.go"},
		Rules: map[string]RuleConfig{
			"LK0980": {Severity: "critical", Params: map[string]any{"max": 4}},
		},
	}
	if err := cfg.Apply([]*analysis.Analyzer{testAnalyzer}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if maxParams != 4 {
		t.Errorf("max = %d, want 4", maxParams)
	}
	for flagName, want := range map[string]string{
		"severity":  "critical",
		"generated": "true",
		"exclude":   "**/vendor/**,*_mock.go",
	} {
		if got := testAnalyzer.Flags.Lookup(flagName).Value.String(); got != want {
			t.Errorf("-%s = %q, want %q", flagName, got, want)
		}
	}

	bad := &Config{Rules: map[string]RuleConfig{
		"configtest": {Severity: "fatal", Params: map[string]any{"max": "x", "colour": 1}},
	}}
	err := bad.Apply([]*analysis.Analyzer{testAnalyzer})
	if err == nil {
		t.Fatal("Apply() accepted invalid settings")
	}
	for _, want := range []string{"fatal", `unknown parameter "colour"`, "parameter max"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Apply() error %q does not mention %q", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	good := &Config{
		MinSeverity: "major",
		Rules: map[string]RuleConfig{
			"default":    enabled(true),
			"configtest": {Severity: "minor"},
			"nounsafe":   enabled(true),
		},
		CustomRules: []CustomRule{{ID: "LK9001", Name: "nounsafe", Calls: []string{"unsafe.Slice"}}},
	}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	bad := &Config{
		MinSeverity: "loud",
		Rules:       map[string]RuleConfig{"nosuchrule": enabled(true)},
		CustomRules: []CustomRule{
			{ID: "LK9002"},
			{ID: "LK9003", Name: "x", Severity: "odd", Calls: []string{"a.B"}},
			{ID: "LK9004", Name: "y", Calls: []string{"bogus"}},
		},
	}
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() accepted an invalid configuration")
	}
	for _, want := range []string{"min-severity", "nosuchrule", "custom-rules[0]", "custom rule LK9003", `custom rule LK9004: member "bogus"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}

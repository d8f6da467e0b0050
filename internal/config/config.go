// Package config loads the lintkit project configuration.
//
// The configuration file is searched upward from the working directory. Both
// YAML and TOML are accepted:
//
//	rules:
//	  default: true
//	  todotracker: false
//	  paramcount:
//	    severity: critical
//	    params: {max: 5}
//	exclude: ["**/vendor/**"]
//	min-severity: minor
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"
	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = ".lintkit.yaml"

// DefaultKey is the rules entry that sets the state of unlisted rules.
const DefaultKey = "default"

// FileNames are the configuration file names tried in each directory, in
// order.
var FileNames = []string{ConfigFileName, ".lintkit.yml", ".lintkit.toml"}

// Config is the project configuration.
type Config struct {
	// Rules is keyed by analyzer name or rule ID. The special key "default"
	// enables or disables every rule without an entry of its own.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`
	// Exclude holds doublestar patterns of files never reported on.
	Exclude []string `yaml:"exclude" toml:"exclude"`
	// Generated also reports in generated files.
	Generated bool `yaml:"generated" toml:"generated"`
	// MinSeverity disables rules less severe than it.
	MinSeverity string `yaml:"min-severity" toml:"min-severity"`
	// CustomRules declare banned calls.
	CustomRules []CustomRule `yaml:"custom-rules" toml:"custom-rules"`

	// Path is the file the configuration was loaded from, empty for the
	// built-in default.
	Path string `yaml:"-" toml:"-"`
}

// RuleConfig configures one rule. In YAML a bare bool is accepted as a
// shorthand for {enabled: <bool>}.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled" toml:"enabled"`
	Severity string         `yaml:"severity" toml:"severity"`
	Params   map[string]any `yaml:"params" toml:"params"`
}

// CustomRule declares a rule that reports every call of the listed
// functions or methods.
type CustomRule struct {
	ID       string   `yaml:"id" toml:"id"`
	Name     string   `yaml:"name" toml:"name"`
	Message  string   `yaml:"message" toml:"message"`
	Severity string   `yaml:"severity" toml:"severity"`
	Calls    []string `yaml:"calls" toml:"calls"`
	Doc      string   `yaml:"doc" toml:"doc"`
}

// UnmarshalYAML accepts a bool or a mapping.
func (r *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("line %d: rule entry must be a bool or a mapping: %w", node.Line, err)
		}
		r.Enabled = &enabled
		return nil
	}

	type plain RuleConfig
	return node.Decode((*plain)(r))
}

// UnmarshalTOML accepts a bool or a table.
func (r *RuleConfig) UnmarshalTOML(data any) error {
	if enabled, ok := data.(bool); ok {
		r.Enabled = &enabled
		return nil
	}

	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("rule entry must be a bool or a table, got %T", data)
	}

	for key, val := range table {
		var ok bool
		switch key {
		case "enabled":
			var b bool
			b, ok = val.(bool)
			r.Enabled = &b
		case "severity":
			r.Severity, ok = val.(string)
		case "params":
			r.Params, ok = val.(map[string]any)
		default:
			return fmt.Errorf("unknown rule setting %q", key)
		}
		if !ok {
			return fmt.Errorf("rule setting %q has type %T", key, val)
		}
	}
	return nil
}

// Default is the configuration used without a configuration file.
func Default() *Config {
	return &Config{}
}

// Load loads the first configuration file found in the current directory
// or any parent directory up to the filesystem root.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		glog.V(1).Info("no configuration file found, using defaults")
		return Default(), nil
	}

	glog.V(1).Infof("using configuration %s", path)
	return LoadFrom(path)
}

// LoadFrom loads configuration from path. Files ending in .toml are decoded
// as TOML, everything else as YAML.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	cfg.Path = path
	return &cfg, nil
}

// findConfigFile searches for a configuration file starting from the
// current directory and walking up to parent directories.
func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ruleConfig finds the entry for an analyzer, by name or by rule ID.
func (c *Config) ruleConfig(name string) (RuleConfig, bool) {
	if c == nil {
		return RuleConfig{}, false
	}
	if rc, ok := c.Rules[name]; ok {
		return rc, true
	}
	if d, ok := rule.Lookup(name); ok {
		for key, rc := range c.Rules {
			if strings.EqualFold(key, d.ID) {
				return rc, true
			}
		}
	}
	return RuleConfig{}, false
}

// IsEnabled reports whether the rule called name runs. An explicit entry
// wins, then the "default" entry, then the rule's own default.
func (c *Config) IsEnabled(name string) bool {
	if rc, ok := c.ruleConfig(name); ok {
		return rc.Enabled == nil || *rc.Enabled
	}

	if c != nil {
		if rc, ok := c.Rules[DefaultKey]; ok && rc.Enabled != nil {
			return *rc.Enabled
		}
	}

	if d, ok := rule.Lookup(name); ok {
		return d.EnabledByDefault
	}
	return true
}

// Severity is the configured severity of a rule, falling back to its
// descriptor.
func (c *Config) Severity(name string) (rule.Severity, bool) {
	if rc, ok := c.ruleConfig(name); ok && rc.Severity != "" {
		if s, err := rule.ParseSeverity(rc.Severity); err == nil {
			return s, true
		}
	}
	if d, ok := rule.Lookup(name); ok {
		return d.Severity, true
	}
	return rule.Info, false
}

// MinimumSeverity is the parsed min-severity, Info when unset or invalid.
func (c *Config) MinimumSeverity() rule.Severity {
	if c != nil && c.MinSeverity != "" {
		if s, err := rule.ParseSeverity(c.MinSeverity); err == nil {
			return s
		}
	}
	return rule.Info
}

// FilterAnalyzers returns the analyzers that are enabled and at least as
// severe as min-severity. A rule's severity comes from its configuration
// entry, then from its -severity flag, then from its descriptor.
func (c *Config) FilterAnalyzers(all []*analysis.Analyzer) []*analysis.Analyzer {
	minimum := c.MinimumSeverity()

	enabled := make([]*analysis.Analyzer, 0, len(all))
	for _, a := range all {
		if !c.IsEnabled(a.Name) {
			continue
		}
		if s, ok := c.effectiveSeverity(a); ok && !s.AtLeast(minimum) {
			glog.V(1).Infof("%s: severity %s below %s", a.Name, s, minimum)
			continue
		}
		enabled = append(enabled, a)
	}

	return enabled
}

func (c *Config) effectiveSeverity(a *analysis.Analyzer) (rule.Severity, bool) {
	if rc, ok := c.ruleConfig(a.Name); ok && rc.Severity != "" {
		if s, err := rule.ParseSeverity(rc.Severity); err == nil {
			return s, true
		}
	}
	if f := a.Flags.Lookup("severity"); f != nil {
		if s, err := rule.ParseSeverity(f.Value.String()); err == nil {
			return s, true
		}
	}
	return c.Severity(a.Name)
}

// Apply copies the configuration onto the analyzer flags: severity,
// generated, exclude and rule parameters. Command-line flags parsed later
// still override it.
func (c *Config) Apply(analyzers []*analysis.Analyzer) error {
	if c == nil {
		return nil
	}

	var errs []error
	for _, a := range analyzers {
		if c.Generated {
			setIfPresent(a, "generated", "true")
		}
		if len(c.Exclude) > 0 {
			setIfPresent(a, "exclude", strings.Join(c.Exclude, ","))
		}

		rc, ok := c.ruleConfig(a.Name)
		if !ok {
			continue
		}
		if rc.Severity != "" {
			if err := a.Flags.Set("severity", rc.Severity); err != nil {
				errs = append(errs, fmt.Errorf("rule %s: %w", a.Name, err))
			}
		}

		keys := make([]string, 0, len(rc.Params))
		for k := range rc.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if a.Flags.Lookup(k) == nil {
				errs = append(errs, fmt.Errorf("rule %s: unknown parameter %q", a.Name, k))
				continue
			}
			if err := a.Flags.Set(k, fmt.Sprint(rc.Params[k])); err != nil {
				errs = append(errs, fmt.Errorf("rule %s: parameter %s: %w", a.Name, k, err))
			}
		}
	}

	return errors.Join(errs...)
}

func setIfPresent(a *analysis.Analyzer, name, value string) {
	if a.Flags.Lookup(name) == nil {
		return
	}
	if err := a.Flags.Set(name, value); err != nil {
		glog.Warningf("%s: setting -%s=%s: %v", a.Name, name, value, err)
	}
}

// Validate checks names, severities and custom rule calls without touching
// any analyzer.
// Rule entries must name a registered rule or a custom rule of this file.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.MinSeverity != "" {
		if _, err := rule.ParseSeverity(c.MinSeverity); err != nil {
			errs = append(errs, fmt.Errorf("min-severity: %w", err))
		}
	}

	custom := make([]string, 0, len(c.CustomRules))
	for i, cr := range c.CustomRules {
		switch {
		case cr.ID == "" || cr.Name == "":
			errs = append(errs, fmt.Errorf("custom-rules[%d]: id and name are required", i))
		case len(cr.Calls) == 0:
			errs = append(errs, fmt.Errorf("custom rule %s: no calls listed", cr.ID))
		}
		if cr.Severity != "" {
			if _, err := rule.ParseSeverity(cr.Severity); err != nil {
				errs = append(errs, fmt.Errorf("custom rule %s: %w", cr.ID, err))
			}
		}
		for _, call := range cr.Calls {
			if _, err := track.ParseMember(call); err != nil {
				errs = append(errs, fmt.Errorf("custom rule %s: %w", cr.ID, err))
			}
		}
		custom = append(custom, cr.ID, cr.Name)
	}

	keys := make([]string, 0, len(c.Rules))
	for k := range c.Rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rc := c.Rules[key]
		if _, known := rule.Lookup(key); !known && key != DefaultKey && !slices.Contains(custom, key) {
			errs = append(errs, fmt.Errorf("rules: unknown rule %q", key))
		}
		if rc.Severity != "" {
			if _, err := rule.ParseSeverity(rc.Severity); err != nil {
				errs = append(errs, fmt.Errorf("rule %s: %w", key, err))
			}
		}
	}

	return errors.Join(errs...)
}

// Command lintkit runs the lintkit rule suite over Go packages.
//
// Usage:
//
//	lintkit ./...
//	lintkit -paramcount.max=5 -todotracker=false ./...
//	lintkit -min-severity=major -paramcount.severity=info ./...
//	lintkit version
//
// Configuration:
//
// Create a .lintkit.yaml (or .lintkit.toml) file in your project root:
//
//	rules:
//	  # Disable specific rules by name or ID
//	  todotracker: false
//	  LK1013: true
//
//	  # Tune a rule
//	  paramcount:
//	    severity: critical
//	    params:
//	      max: 5
//
//	exclude: ["**/vendor/**", "**/*_mock.go"]
//	min-severity: minor
//
//	custom-rules:
//	  - id: LK9001
//	    name: noexit
//	    message: "os.Exit is banned outside main"
//	    calls: ["os.Exit"]
//
// Rules (run "lintkit-rules list" for the full catalogue):
//
// Security:
//   - weakcrypto (LK1001): MD5, SHA-1, DES and RC4
//   - cookiesecure (LK1002), cookiehttponly (LK1003): cookie flags
//   - insecuretls (LK1004): InsecureSkipVerify, legacy versions and suites
//   - contentsecurity (LK1005): permissive Content-Security-Policy
//   - permissivecors (LK1006): Access-Control-Allow-Origin: *
//   - filepermissions (LK1007): world-writable modes
//   - shellexec (LK1008): sh -c with dynamic commands
//   - hardcodedcreds (LK1011): secrets in source
//
// Reliability:
//   - httpclient (LK1009): clients without timeouts
//   - servertimeout (LK1010): servers without read timeouts
//   - reusableclient (LK1012): clients built per request
//   - resourceclose (LK1017): unclosed bodies, files and rows
//
// Maintainability:
//   - duplicatestring (LK1013, opt-in): repeated literals
//   - paramcount (LK1014): long parameter lists
//   - functionsize (LK1015): long functions
//   - todotracker (LK1016): TODOs without owner
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/spechtlabs/lintkit/analyzers"
	"github.com/spechtlabs/lintkit/customrule"
	"github.com/spechtlabs/lintkit/internal/config"
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Println(version.Info())
		fmt.Println(version.Banner(len(analyzers.All())))
		os.Exit(0)
	}

	enabled, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintkit: %v\n", err)
		os.Exit(1)
	}
	if len(enabled) == 0 {
		fmt.Fprintf(os.Stderr, "lintkit: no rules enabled (check your %s configuration)\n", config.ConfigFileName)
		os.Exit(1)
	}

	defer glog.Flush()
	multichecker.Main(enabled...)
}

// setup loads the configuration, builds the custom rules and returns the
// analyzers to run with their flags preset from the configuration.
func setup() ([]*analysis.Analyzer, error) {
	// Faults go to stderr instead of glog's files; -logtostderr=false
	// on the command line restores them.
	_ = flag.Set("logtostderr", "true")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	custom, err := customrule.Build(cfg.CustomRules)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}

	// Flags are parsed after filtering, so -min-severity and -<rule>.severity
	// given on the command line are enforced when each rule runs.
	rule.SetMinSeverity(cfg.MinimumSeverity())
	flag.Var(rule.MinSeverityFlag(), "min-severity", "do not report rules less severe than this (info, minor, major, critical, blocker)")

	all := append(analyzers.All(), custom...)
	if err := cfg.Apply(all); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path, err)
	}
	return cfg.FilterAnalyzers(all), nil
}

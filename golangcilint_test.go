package lintkit

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/paramcount"
)

func names(as []*analysis.Analyzer) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

func TestPlugin(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lintkit.yaml")
	conf := `
rules:
  LK1016: false
custom-rules:
  - id: LK9201
    name: noplugexit
    calls: ["os.Exit"]
`
	if err := os.WriteFile(path, []byte(conf), 0o600); err != nil {
		t.Fatal(err)
	}

	lp, err := New(map[string]any{
		"config":   path,
		"disabled": []any{"functionsize"},
		"params":   map[string]any{"paramcount": map[string]any{"max": 4}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = paramcount.Analyzer.Flags.Set("max", "7") })

	as, err := lp.BuildAnalyzers()
	if err != nil {
		t.Fatalf("BuildAnalyzers() error = %v", err)
	}
	got := names(as)

	for _, name := range []string{"weakcrypto", "resourceclose", "noplugexit"} {
		if !slices.Contains(got, name) {
			t.Errorf("analyzers %v lack %s", got, name)
		}
	}
	for _, name := range []string{"todotracker", "functionsize", "duplicatestring"} {
		if slices.Contains(got, name) {
			t.Errorf("analyzers %v include %s", got, name)
		}
	}
	if v := paramcount.Analyzer.Flags.Lookup("max").Value.String(); v != "4" {
		t.Errorf("paramcount max = %s, want 4", v)
	}

	again, err := lp.BuildAnalyzers()
	if err != nil || len(again) != len(as) {
		t.Errorf("second BuildAnalyzers() = %d analyzers, %v", len(again), err)
	}

	if lp.GetLoadMode() != register.LoadModeTypesInfo {
		t.Errorf("GetLoadMode() = %q", lp.GetLoadMode())
	}
}

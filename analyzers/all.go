// Package analyzers provides a registry of all lintkit analyzers.
//
// This package exports all analyzers in a single slice for convenient use
// with multichecker and plugin systems. Importing it registers every rule
// descriptor.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/contentsecurity"
	"github.com/spechtlabs/lintkit/cookiehttponly"
	"github.com/spechtlabs/lintkit/cookiesecure"
	"github.com/spechtlabs/lintkit/duplicatestring"
	"github.com/spechtlabs/lintkit/filepermissions"
	"github.com/spechtlabs/lintkit/functionsize"
	"github.com/spechtlabs/lintkit/hardcodedcreds"
	"github.com/spechtlabs/lintkit/httpclient"
	"github.com/spechtlabs/lintkit/insecuretls"
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/paramcount"
	"github.com/spechtlabs/lintkit/permissivecors"
	"github.com/spechtlabs/lintkit/resourceclose"
	"github.com/spechtlabs/lintkit/reusableclient"
	"github.com/spechtlabs/lintkit/servertimeout"
	"github.com/spechtlabs/lintkit/shellexec"
	"github.com/spechtlabs/lintkit/todotracker"
	"github.com/spechtlabs/lintkit/weakcrypto"
)

// All returns all built-in analyzers.
// Analyzers are grouped by category for clarity.
func All() []*analysis.Analyzer {
	all := Security()
	all = append(all, Reliability()...)
	return append(all, Maintainability()...)
}

// Security returns analyzers for vulnerabilities and hardening.
func Security() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		weakcrypto.Analyzer,
		cookiesecure.Analyzer,
		cookiehttponly.Analyzer,
		insecuretls.Analyzer,
		contentsecurity.Analyzer,
		permissivecors.Analyzer,
		filepermissions.Analyzer,
		shellexec.Analyzer,
		hardcodedcreds.Analyzer,
	}
}

// Reliability returns analyzers for resource management and HTTP robustness.
func Reliability() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		httpclient.Analyzer,
		servertimeout.Analyzer,
		reusableclient.Analyzer,
		resourceclose.Analyzer,
	}
}

// Maintainability returns analyzers for code structure.
func Maintainability() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		duplicatestring.Analyzer,
		paramcount.Analyzer,
		functionsize.Analyzer,
		todotracker.Analyzer,
	}
}

// ByCategory returns the built-in analyzers of category c.
func ByCategory(c rule.Category) []*analysis.Analyzer {
	switch c {
	case rule.Security:
		return Security()
	case rule.Reliability:
		return Reliability()
	case rule.Maintainability:
		return Maintainability()
	}
	return nil
}

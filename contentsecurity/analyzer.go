// Package contentsecurity reports Content-Security-Policy headers that allow
// any source or unsafe script execution.
package contentsecurity

import (
	"strings"

	"github.com/spechtlabs/lintkit/internal/httpheader"
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect permissive Content-Security-Policy headers

A policy that lists the * source, 'unsafe-inline' or 'unsafe-eval' in any
directive gives up most of the protection against cross-site scripting.
Wildcard hosts such as https://*.cdn.example are reported as well: any
subdomain that serves user content becomes a script source.

Reported:
    w.Header().Set("Content-Security-Policy", "default-src *")
    h["Content-Security-Policy"] = []string{"script-src 'self' 'unsafe-eval'"}
    h.Set("Content-Security-Policy", "script-src https://*.cdn.example")

Not reported:
    w.Header().Set("Content-Security-Policy", "default-src 'self'")
    h.Set("Content-Security-Policy", policy) // not a constant

Header names are matched case-insensitively.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1005",
	Name:             "contentsecurity",
	Title:            "detect permissive Content-Security-Policy headers",
	Message:          "Content-Security-Policy %q allows %s",
	Severity:         rule.Major,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

const header = "Content-Security-Policy"

var weakSources = map[string]string{
	"*":               "any source",
	"'unsafe-inline'": "inline scripts",
	"'unsafe-eval'":   "eval",
}

// weakSource returns the first weak source of a policy.
func weakSource(policy string) (string, bool) {
	for directive := range strings.SplitSeq(policy, ";") {
		fields := strings.Fields(directive)
		if len(fields) < 2 {
			continue
		}
		for _, src := range fields[1:] {
			if what, ok := weakSources[strings.ToLower(src)]; ok {
				return what, true
			}
			if strings.Contains(src, "*") {
				return "wildcard hosts", true
			}
		}
	}
	return "", false
}

func initialize(c *rule.Context) {
	permissive := track.ConstStringMatches(func(s string) bool {
		_, weak := weakSource(s)
		return weak
	})

	httpheader.Track(c, header, permissive, func(policy string) []any {
		what, _ := weakSource(policy)
		return []any{policy, what}
	})
}

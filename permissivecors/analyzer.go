// Package permissivecors reports CORS headers that let any origin read
// responses.
package permissivecors

import (
	"strings"

	"github.com/spechtlabs/lintkit/internal/httpheader"
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect Access-Control-Allow-Origin headers that allow every origin

Setting Access-Control-Allow-Origin to * or null lets scripts on any site
read the response. Echo a value from an allow-list instead:

    if allowed[origin] {
        w.Header().Set("Access-Control-Allow-Origin", origin)
    }

Values that are not constants are not reported.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1006",
	Name:             "permissivecors",
	Title:            "detect Access-Control-Allow-Origin headers that allow every origin",
	Message:          "Access-Control-Allow-Origin %q allows requests from any origin",
	Severity:         rule.Major,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

func initialize(c *rule.Context) {
	anyOrigin := track.ConstStringMatches(func(s string) bool {
		s = strings.TrimSpace(s)
		return s == "*" || strings.EqualFold(s, "null")
	})

	httpheader.Track(c, "Access-Control-Allow-Origin", anyOrigin, func(origin string) []any {
		return []any{origin}
	})
}

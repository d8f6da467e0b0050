// Package servertimeout reports HTTP servers that never time out slow
// clients.
package servertimeout

import (
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `require read timeouts on HTTP servers

An http.Server without ReadHeaderTimeout or ReadTimeout keeps a connection
open for as long as the client keeps sending headers, which makes
Slowloris-style resource exhaustion trivial. The package level helpers
http.ListenAndServe, http.ListenAndServeTLS, http.Serve and http.ServeTLS
always use such a server.

    srv := &http.Server{
        Addr:              ":8080",
        Handler:           mux,
        ReadHeaderTimeout: 5 * time.Second,
    }
    srv.ListenAndServe()`

var Descriptor = &rule.Descriptor{
	ID:               "LK1010",
	Name:             "servertimeout",
	Title:            "require read timeouts on HTTP servers",
	Message:          "%s; set ReadHeaderTimeout on an http.Server",
	Severity:         rule.Major,
	Category:         rule.Reliability,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

var (
	serverType = track.MustParseMember("net/http.Server")
	helpers    = []track.Member{
		track.MustParseMember("net/http.ListenAndServe"),
		track.MustParseMember("net/http.ListenAndServeTLS"),
		track.MustParseMember("net/http.Serve"),
		track.MustParseMember("net/http.ServeTLS"),
	}
)

func initialize(c *rule.Context) {
	objects := track.NewObjectCreationTracker()
	created := objects.Input(c)
	created.Args = func(track.ObjectCreationSite) []any {
		return []any{"http.Server has no read timeout"}
	}

	nonZero := track.Not(track.Equals(0))
	objects.Track(created,
		objects.MatchConstructor(serverType),
		track.ExceptWhen(track.Any(
			objects.EffectiveFieldIs("ReadHeaderTimeout", nonZero),
			objects.EffectiveFieldIs("ReadTimeout", nonZero))))

	calls := track.NewInvocationTracker()
	served := calls.Input(c)
	served.Args = func(s track.InvocationSite) []any {
		return []any{"http." + s.Func.Name() + " serves without timeouts"}
	}
	calls.Track(served, calls.MatchMethod(helpers...))
}

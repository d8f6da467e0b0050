// Package httpclient enforces http.Client best practices.
// It detects clients that can hang forever and requests that cannot be
// cancelled.
package httpclient

import (
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `enforce http.Client best practices

This analyzer detects:
1. http.Client{} without Timeout set (will hang forever on slow servers)
2. http.DefaultClient usage (has no timeout, shared globally)
3. http.Get/Post/etc direct calls (use shared DefaultClient)
4. http.NewRequest, which cannot be cancelled

A Timeout assigned right after the literal, in the same block, counts.
HTTP clients without timeouts are a common source of goroutine leaks
and hung services in production.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1009",
	Name:             "httpclient",
	Title:            "enforce http.Client best practices",
	Message:          "%s",
	Severity:         rule.Major,
	Category:         rule.Reliability,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

var (
	clientType    = track.MustParseMember("net/http.Client")
	defaultClient = track.MustParseMember("net/http.DefaultClient")
)

const defaultClientCall = "uses DefaultClient with no timeout; create a client with Timeout"

var directCalls = map[track.Member]string{
	track.MustParseMember("net/http.Get"):        "http.Get " + defaultClientCall,
	track.MustParseMember("net/http.Post"):       "http.Post " + defaultClientCall,
	track.MustParseMember("net/http.PostForm"):   "http.PostForm " + defaultClientCall,
	track.MustParseMember("net/http.Head"):       "http.Head " + defaultClientCall,
	track.MustParseMember("net/http.NewRequest"): "http.NewRequest doesn't support context; use http.NewRequestWithContext instead",
}

func initialize(c *rule.Context) {
	checkClientLiteral(c)
	checkDirectHTTPCalls(c)
	checkDefaultClient(c)
}

// checkClientLiteral detects http.Client{} without Timeout.
func checkClientLiteral(c *rule.Context) {
	objects := track.NewObjectCreationTracker()
	in := objects.Input(c)
	in.Args = func(track.ObjectCreationSite) []any {
		return []any{"http.Client without Timeout will wait forever; always set Timeout (e.g., 30*time.Second)"}
	}

	hasTimeout := objects.EffectiveFieldIs("Timeout", track.Not(track.Equals(0)))
	objects.Track(in,
		objects.MatchConstructor(clientType),
		track.ExceptWhen(hasTimeout))
}

// checkDirectHTTPCalls detects http.Get, http.Post, etc.
func checkDirectHTTPCalls(c *rule.Context) {
	members := make([]track.Member, 0, len(directCalls))
	for m := range directCalls {
		members = append(members, m)
	}

	calls := track.NewInvocationTracker()
	in := calls.Input(c)
	in.Args = func(s track.InvocationSite) []any {
		m, _ := track.MemberOf(s.Func)
		return []any{directCalls[m]}
	}
	calls.Track(in,
		calls.MatchMethod(members...),
		track.ExceptWhen(track.InTestFile[track.InvocationSite]()))
}

// checkDefaultClient detects http.DefaultClient reads. Replacing the
// default client is left alone.
func checkDefaultClient(c *rule.Context) {
	props := track.NewPropertyAccessTracker()
	in := props.Input(c)
	in.Args = func(track.PropertyAccessSite) []any {
		return []any{"http.DefaultClient has no timeout and is shared globally; create your own http.Client with Timeout"}
	}
	props.Track(in,
		props.MatchProperty(defaultClient),
		props.IsRead())
}

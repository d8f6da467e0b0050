// Package httpheader tracks constant writes of a single HTTP header, both
// through the http.Header map and through its Set and Add methods.
package httpheader

import (
	"go/constant"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

var (
	headerType = track.MustParseMember("net/http.Header")
	setters    = []track.Member{
		track.MustParseMember("(net/http.Header).Set"),
		track.MustParseMember("(net/http.Header).Add"),
	}
)

// Track reports every write of header key whose value satisfies value.
// args receives the offending constant and returns the message arguments.
//
//	h["Key"] = []string{"v"}
//	h.Set("Key", "v")
//	w.Header().Add("key", "v")
func Track(c *rule.Context, key string, value track.Predicate[track.Value], args func(string) []any) {
	isKey := track.ConstStringEqualFold(key)

	elements := track.NewElementAccessTracker()
	assigned := elements.Input(c)
	assigned.Args = func(s track.ElementAccessSite) []any {
		v, _ := track.AssignedValue(s.Site)
		return args(Offending(v, value))
	}
	elements.Track(assigned,
		elements.MatchIndexer(headerType),
		elements.ArgumentAtIndexIs(0, isKey),
		elements.IsAssignment(),
		elements.AssignedValueIs(track.ElementsAny(value)))

	calls := track.NewInvocationTracker()
	set := calls.Input(c)
	set.Args = func(s track.InvocationSite) []any {
		var v track.Value
		if vs := s.Args.Named("value"); len(vs) > 0 {
			v = s.Value(vs[0])
		}
		return args(Offending(v, value))
	}
	calls.Track(set,
		calls.MatchMethod(setters...),
		calls.ArgumentNamedIs("key", isKey),
		calls.ArgumentNamedIs("value", value))
}

// Offending returns the first string constant in v, or in the elements of a
// composite literal v, that satisfies p.
func Offending(v track.Value, p track.Predicate[track.Value]) string {
	found := ""
	track.ElementsAny(func(e track.Value) bool {
		if !p(e) {
			return false
		}
		if c := e.Const(); c != nil && c.Kind() == constant.String {
			found = constant.StringVal(c)
		}
		return true
	})(v)
	return found
}

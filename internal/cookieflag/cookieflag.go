// Package cookieflag tracks http.Cookie values whose boolean security flag,
// Secure or HttpOnly, is left off.
package cookieflag

import (
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

var cookieType = track.MustParseMember("net/http.Cookie")

// Track reports cookie creations where field does not effectively hold a
// value other than false, and assignments of false to field. The message
// argument is "is created" or "is modified".
//
// An assignment to a variable bound only to cookie creations in the same
// function is left to the creation check, which already sees it.
func Track(c *rule.Context, field string) {
	flag := track.Member{Path: cookieType.Path, Receiver: cookieType.Name, Name: field}

	objects := track.NewObjectCreationTracker()
	created := objects.Input(c)
	created.Args = func(track.ObjectCreationSite) []any { return []any{"is created"} }

	objects.Track(created,
		objects.MatchConstructor(cookieType),
		track.ExceptWhen(objects.EffectiveFieldIs(field, track.Not(track.IsConstFalse))))

	props := track.NewPropertyAccessTracker()
	modified := props.Input(c)
	modified.Args = func(track.PropertyAccessSite) []any { return []any{"is modified"} }

	props.Track(modified,
		props.MatchProperty(flag),
		props.IsAssignment(),
		props.AssignedValueIs(track.IsConstFalse),
		track.ExceptWhen(func(s track.PropertyAccessSite) bool {
			return s.BoundToCreation(s.Selector.X, cookieType)
		}))
}

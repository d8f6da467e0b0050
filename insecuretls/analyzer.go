// Package insecuretls reports crypto/tls configurations that weaken
// certificate verification or protocol security.
package insecuretls

import (
	"crypto/tls"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect insecure TLS configuration

A tls.Config is reported when a constant setting disables certificate
verification, allows protocol versions before TLS 1.2, or enables a cipher
suite listed by tls.InsecureCipherSuites. Both literal fields and later
assignments to a config are checked:

    cfg := &tls.Config{InsecureSkipVerify: true}
    cfg.MinVersion = tls.VersionTLS10

Values that are not constants are not reported.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1004",
	Name:             "insecuretls",
	Title:            "detect insecure TLS configuration",
	Message:          "insecure TLS configuration: %s",
	Severity:         rule.Critical,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

var configType = track.MustParseMember("crypto/tls.Config")

type check struct {
	field   string
	value   track.Predicate[track.Value]
	message string
}

var checks = []check{
	{"InsecureSkipVerify", track.IsConstTrue, "InsecureSkipVerify disables certificate verification"},
	{"MinVersion", track.ConstIntMatches(legacyVersion), "MinVersion allows protocol versions older than TLS 1.2"},
	{"MaxVersion", track.ConstIntMatches(legacyVersion), "MaxVersion limits connections to protocol versions older than TLS 1.2"},
	{"CipherSuites", track.ElementsAny(track.ConstIntMatches(insecureSuite)), "CipherSuites enables a suite from tls.InsecureCipherSuites"},
}

// Zero means the package default, which is safe.
func legacyVersion(v int64) bool {
	return v != 0 && v < tls.VersionTLS12
}

var insecureSuites = func() map[int64]bool {
	ids := make(map[int64]bool)
	for _, s := range tls.InsecureCipherSuites() {
		ids[int64(s.ID)] = true
	}
	return ids
}()

func insecureSuite(id int64) bool { return insecureSuites[id] }

func initialize(c *rule.Context) {
	objects := track.NewObjectCreationTracker()
	props := track.NewPropertyAccessTracker()

	for _, chk := range checks {
		created := objects.Input(c)
		created.Args = func(track.ObjectCreationSite) []any { return []any{chk.message} }
		objects.Track(created,
			objects.MatchConstructor(configType),
			objects.FieldIs(chk.field, chk.value))

		assigned := props.Input(c)
		assigned.Args = func(track.PropertyAccessSite) []any { return []any{chk.message} }
		props.Track(assigned,
			props.MatchProperty(track.Member{Path: configType.Path, Receiver: configType.Name, Name: chk.field}),
			props.IsAssignment(),
			props.AssignedValueIs(chk.value))
	}
}

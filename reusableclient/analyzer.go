// Package reusableclient reports HTTP clients and transports that are built
// per request or per loop iteration instead of once.
package reusableclient

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `reuse HTTP clients and transports

An http.Transport owns a connection pool. Building a new client or transport
in an HTTP handler or in a loop throws the pool away each time, so every
request pays for a fresh TCP and TLS handshake and idle connections pile up
until they time out.

Create the client once, for example in the constructor of the type that
uses it, and share it. Each function is reported once, at its first
offending creation; later ones are attached as related locations.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1012",
	Name:             "reusableclient",
	Title:            "reuse HTTP clients and transports",
	Message:          "%s created %s; create it once and reuse it",
	Severity:         rule.Minor,
	Category:         rule.Reliability,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

var pooled = []track.Member{
	track.MustParseMember("net/http.Client"),
	track.MustParseMember("net/http.Transport"),
}

type creation struct {
	pos, end token.Pos
	typeName string
	where    string
}

func (c creation) Pos() token.Pos { return c.pos }
func (c creation) End() token.Pos { return c.end }

func initialize(c *rule.Context) {
	c.RegisterSymbolStartAction(func(sc *rule.SymbolContext) {
		var found []creation

		objects := track.NewObjectCreationTracker()
		in := objects.Input(sc.Context)
		in.Scope = sc
		in.OnMatch = func(s track.ObjectCreationSite) {
			where := ""
			switch {
			case s.InsideLoop():
				where = "in a loop"
			case inHandler(s.Site):
				where = "per request in an HTTP handler"
			default:
				return
			}
			found = append(found, creation{
				pos:      s.Pos(),
				end:      s.End(),
				typeName: "http." + s.Type.Obj().Name(),
				where:    where,
			})
		}
		objects.Track(in, objects.MatchConstructor(pooled...))

		sc.RegisterSymbolEndAction(func() {
			if len(found) == 0 {
				return
			}
			first, rest := found[0], found[1:]
			related := make([]analysis.RelatedInformation, len(rest))
			for i, r := range rest {
				related[i] = analysis.RelatedInformation{
					Pos:     r.Pos(),
					End:     r.End(),
					Message: r.typeName + " also created " + r.where,
				}
			}
			sc.ReportRelated(first, related, first.typeName, first.where)
		})
	})
}

// inHandler reports whether the function around s takes an
// http.ResponseWriter and an *http.Request.
func inHandler(s track.Site) bool {
	ft, _, ok := s.EnclosingFunc()
	if !ok || ft.Params == nil {
		return false
	}

	var writer, request bool
	for _, field := range ft.Params.List {
		m, ok := track.TypeMember(s.Info().TypeOf(field.Type))
		if !ok || m.Path != "net/http" {
			continue
		}
		writer = writer || m.Name == "ResponseWriter"
		request = request || m.Name == "Request"
	}
	return writer && request
}

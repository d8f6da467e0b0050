// Package resourceclose provides an analyzer that detects resources that aren't properly closed.
// This includes HTTP response bodies, files, database rows and network connections.
package resourceclose

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect resources that are not properly closed

This analyzer detects:
1. HTTP response bodies not closed (resp.Body.Close())
2. File handles not closed (file.Close())
3. Database rows, statements and connections not closed (rows.Close())
4. Network connections and listeners not closed

A resource counts as handled when the function closes it anywhere, defers
a Close, returns it, stores it, or passes it to another function. Unclosed
resources cause memory leaks, file descriptor exhaustion, and connection
pool starvation.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1017",
	Name:             "resourceclose",
	Title:            "detect resources that are not properly closed",
	Message:          "%s must be closed: defer %s.Close()",
	Severity:         rule.Critical,
	Category:         rule.Reliability,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

// resourceKind describes how a resource type is closed.
type resourceKind struct {
	what  string
	field string // closed through this field, e.g. Body; empty closes the value itself
}

var kinds = map[track.Member]resourceKind{
	track.MustParseMember("net/http.Response"): {"HTTP response body", "Body"},
	track.MustParseMember("os.File"):           {"file", ""},
	track.MustParseMember("database/sql.Rows"): {"database rows", ""},
	track.MustParseMember("database/sql.Stmt"): {"prepared statement", ""},
	track.MustParseMember("database/sql.Conn"): {"database connection", ""},
	track.MustParseMember("net.Conn"):          {"connection", ""},
	track.MustParseMember("net.Listener"):      {"listener", ""},
}

type opened struct {
	pos, end token.Pos
	v        *types.Var
	kind     resourceKind
}

func (o opened) Pos() token.Pos { return o.pos }
func (o opened) End() token.Pos { return o.end }

func initialize(c *rule.Context) {
	c.RegisterSymbolStartAction(func(sc *rule.SymbolContext) {
		var (
			resources []opened
			handled   = make(map[*types.Var]bool)
		)

		calls := track.NewInvocationTracker()
		in := calls.Input(sc.Context)
		in.Scope = sc
		in.OnMatch = func(s track.InvocationSite) {
			kind, _ := resultKind(s)
			if v := boundVar(s); v != nil {
				resources = append(resources, opened{pos: s.Pos(), end: s.End(), v: v, kind: kind})
			}
		}
		calls.Track(in, func(s track.InvocationSite) bool {
			_, ok := resultKind(s)
			return ok
		})

		sc.RegisterNodeAction(func(cur inspector.Cursor) {
			id := cur.Node().(*ast.Ident)
			v, ok := sc.Info().Uses[id].(*types.Var)
			if !ok {
				return
			}
			if closes(cur) || escapes(cur) {
				handled[v] = true
			}
		}, (*ast.Ident)(nil))

		sc.RegisterSymbolEndAction(func() {
			for _, r := range resources {
				if handled[r.v] {
					continue
				}
				target := r.v.Name()
				if r.kind.field != "" {
					target += "." + r.kind.field
				}
				sc.Report(r, r.kind.what, target)
			}
		})
	})
}

// resultKind classifies the first result of the call.
func resultKind(s track.InvocationSite) (resourceKind, bool) {
	t := s.Info().TypeOf(s.Call)
	if tuple, ok := t.(*types.Tuple); ok {
		if tuple.Len() == 0 {
			return resourceKind{}, false
		}
		t = tuple.At(0).Type()
	}
	m, ok := track.TypeMember(t)
	if !ok {
		return resourceKind{}, false
	}
	k, ok := kinds[m]
	return k, ok
}

// boundVar returns the local variable receiving the first result, as in
// f, err := os.Open(name).
func boundVar(s track.InvocationSite) *types.Var {
	kind, i := s.Cursor.ParentEdge()
	if kind != edge.AssignStmt_Rhs {
		return nil
	}
	as := s.Cursor.Parent().Node().(*ast.AssignStmt)
	if len(as.Rhs) == 1 {
		i = 0
	}
	if i >= len(as.Lhs) {
		return nil
	}
	id, ok := as.Lhs[i].(*ast.Ident)
	if !ok || id.Name == "_" {
		return nil
	}
	v, _ := s.Info().ObjectOf(id).(*types.Var)
	return v
}

// closes reports whether the identifier is the receiver of a Close call,
// directly or through one field: f.Close(), resp.Body.Close().
func closes(cur inspector.Cursor) bool {
	for range 2 {
		kind, _ := cur.ParentEdge()
		if kind != edge.SelectorExpr_X {
			return false
		}
		cur = cur.Parent()
		sel := cur.Node().(*ast.SelectorExpr)
		if sel.Sel.Name != "Close" {
			continue
		}
		kind, _ = cur.ParentEdge()
		return kind == edge.CallExpr_Fun
	}
	return false
}

// escapes reports whether the value of the identifier leaves the function's
// control: returned, passed, stored or sent.
func escapes(cur inspector.Cursor) bool {
	kind, _ := cur.ParentEdge()
	switch kind {
	case edge.CallExpr_Args, edge.ReturnStmt_Results, edge.AssignStmt_Rhs,
		edge.KeyValueExpr_Value, edge.CompositeLit_Elts, edge.SendStmt_Value:
		return true
	}
	return false
}

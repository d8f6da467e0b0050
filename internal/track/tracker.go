package track

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
)

// Site is the node under inspection together with its semantic context.
// It is only valid during the callback it was built for.
type Site struct {
	Ctx    context.Context
	Pass   *analysis.Pass
	Cursor inspector.Cursor
}

// Node is the syntax node of the site.
func (s Site) Node() ast.Node { return s.Cursor.Node() }

// Pos and End make a site an analysis.Range, so it can be reported directly.
func (s Site) Pos() token.Pos { return s.Cursor.Node().Pos() }
func (s Site) End() token.Pos { return s.Cursor.Node().End() }

// Info is the type information of the package.
func (s Site) Info() *types.Info { return s.Pass.TypesInfo }

// Value pairs e with the package type information.
func (s Site) Value(e ast.Expr) Value { return Value{Expr: e, Info: s.Pass.TypesInfo} }

// InTestFile reports whether the site is in a _test.go file.
func (s Site) InTestFile() bool {
	return strings.HasSuffix(s.Pass.Fset.Position(s.Pos()).Filename, "_test.go")
}

// InsideLoop reports whether the site is in the body of a for or range
// statement of its enclosing function. Function literals stop the search.
func (s Site) InsideLoop() bool {
	for c := s.Cursor; ; {
		if _, ok := c.Node().(*ast.File); ok {
			return false
		}
		kind, _ := c.ParentEdge()
		if kind == edge.ForStmt_Body || kind == edge.RangeStmt_Body {
			return true
		}
		c = c.Parent()
		switch c.Node().(type) {
		case *ast.FuncLit, *ast.FuncDecl, nil:
			return false
		}
	}
}

// EnclosingFunc returns the type and body of the innermost function
// declaration or literal around the site.
func (s Site) EnclosingFunc() (*ast.FuncType, *ast.BlockStmt, bool) {
	for c := s.Cursor; c.Node() != nil; c = c.Parent() {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return n.Type, n.Body, true
		case *ast.FuncDecl:
			return n.Type, n.Body, n.Body != nil
		case *ast.File:
			return nil, nil, false
		}
	}
	return nil, nil, false
}

// DeclaredLocally reports whether e names a variable declared inside the
// body of the function enclosing the site. Parameters are not local.
func (s Site) DeclaredLocally(e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}
	v, ok := s.Info().ObjectOf(id).(*types.Var)
	if !ok {
		return false
	}
	_, body, ok := s.EnclosingFunc()
	return ok && body.Pos() <= v.Pos() && v.Pos() < body.End()
}

// Tracker registers a predicate chain for one syntactic shape.
type Tracker[S analysis.Range] struct {
	kinds []ast.Node
	build func(Site) (S, bool)
}

// Input binds a tracker registration to a rule.
type Input[S any] struct {
	Context *rule.Context
	// Scope receives the node action. Nil means Context; a SymbolContext
	// limits the registration to one function.
	Scope rule.Registrar
	// Args formats the message arguments of a match.
	Args func(S) []any
	// OnMatch replaces reporting, for rules that aggregate matches.
	OnMatch func(S)
}

// Input is a convenience for building an Input of the tracker's site type.
func (t *Tracker[S]) Input(c *rule.Context) Input[S] {
	return Input[S]{Context: c}
}

// Track reports every site of the tracker's shape that matches all preds.
func (t *Tracker[S]) Track(in Input[S], preds ...Predicate[S]) {
	chain := Chain[S](preds)
	scope := in.Scope
	if scope == nil {
		scope = in.Context
	}

	scope.RegisterNodeAction(func(cur inspector.Cursor) {
		site, ok := t.build(Site{Ctx: in.Context.Context(), Pass: in.Context.Pass, Cursor: cur})
		if !ok || !chain.Match(site) {
			return
		}
		if in.OnMatch != nil {
			in.OnMatch(site)
			return
		}
		var args []any
		if in.Args != nil {
			args = in.Args(site)
		}
		in.Context.Report(site, args...)
	}, t.kinds...)
}

// Package testsource parses and type-checks Go source fragments for tests.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a type-checked single-file package.
type Source struct {
	Text      string
	Pass      *analysis.Pass
	Inspector *inspector.Inspector
}

// Parse type-checks src as the only file of package test. src is a complete
// file without the package clause, so it may start with imports. The
// returned pass discards diagnostics.
func Parse(tb testing.TB, src string) *Source {
	tb.Helper()

	text := "package " + testpkg + "\n\n" + src

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info := Check(tb, fset, f)

	return &Source{
		Text: text,
		Pass: &analysis.Pass{
			Fset:      fset,
			Files:     []*ast.File{f},
			Pkg:       pkg,
			TypesInfo: info,
			Report:    func(analysis.Diagnostic) {},
		},
		Inspector: inspector.New([]*ast.File{f}),
	}
}

// Check type-checks f with the default importer.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Find returns the cursor of the first node of type N whose source text
// starts with prefix.
func Find[N ast.Node](tb testing.TB, s *Source, prefix string) inspector.Cursor {
	tb.Helper()

	var zero N
	for c := range s.Inspector.Root().Preorder(zero) {
		n := c.Node()
		start := s.Pass.Fset.Position(n.Pos()).Offset
		end := s.Pass.Fset.Position(n.End()).Offset
		if strings.HasPrefix(s.Text[start:end], prefix) {
			return c
		}
	}

	tb.Fatalf("no %T starting with %q", zero, prefix)
	return inspector.Cursor{}
}

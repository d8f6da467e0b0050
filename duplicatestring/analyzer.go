// Package duplicatestring reports string literals repeated across a
// package.
package duplicatestring

import (
	"flag"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `detect duplicated string literals

A string literal of at least -min-length bytes that appears -threshold
times or more in the non-test files of a package should be a named
constant, so that a change cannot miss one of the copies.

Literals in imports, struct tags and const declarations are not counted.
The first occurrence is reported; the others are attached as related
locations.`

var Descriptor = &rule.Descriptor{
	ID:           "LK1013",
	Name:         "duplicatestring",
	Title:        "detect duplicated string literals",
	Message:      "string %q is duplicated %d times; define a constant",
	Severity:     rule.Minor,
	Category:     rule.Maintainability,
	Configurable: true,
	Doc:          Doc,
}

var (
	threshold = 3
	minLength = 5
)

var Analyzer = rule.New(Descriptor, initialize, rule.WithFlags(func(fs *flag.FlagSet) {
	fs.IntVar(&threshold, "threshold", threshold, "number of occurrences that is reported")
	fs.IntVar(&minLength, "min-length", minLength, "minimum length of a counted literal")
}))

func initialize(c *rule.Context) {
	var (
		seen  = make(map[string][]*ast.BasicLit)
		order []string
	)

	c.RegisterNodeAction(func(cur inspector.Cursor) {
		lit, ok := cur.Node().(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING || ignored(c, cur) {
			return
		}
		s, err := strconv.Unquote(lit.Value)
		if err != nil || len(s) < minLength {
			return
		}
		if _, ok := seen[s]; !ok {
			order = append(order, s)
		}
		seen[s] = append(seen[s], lit)
	}, (*ast.BasicLit)(nil))

	c.RegisterCompilationEndAction(func() {
		for _, s := range order {
			lits := seen[s]
			if len(lits) < threshold {
				continue
			}
			related := make([]analysis.RelatedInformation, 0, len(lits)-1)
			for _, lit := range lits[1:] {
				related = append(related, analysis.RelatedInformation{
					Pos:     lit.Pos(),
					End:     lit.End(),
					Message: fmt.Sprintf("duplicate of %q", s),
				})
			}
			c.ReportRelated(lits[0], related, s, len(lits))
		}
	})
}

func ignored(c *rule.Context, cur inspector.Cursor) bool {
	if strings.HasSuffix(c.Pass.Fset.Position(cur.Node().Pos()).Filename, "_test.go") {
		return true
	}
	switch kind, _ := cur.ParentEdge(); kind {
	case edge.ImportSpec_Path, edge.Field_Tag:
		return true
	}
	for p := range cur.Enclosing((*ast.GenDecl)(nil)) {
		if p.Node().(*ast.GenDecl).Tok == token.CONST {
			return true
		}
	}
	return false
}

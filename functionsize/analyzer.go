// Package functionsize enforces function size limits with actionable advice.
//
// Long functions are hard to understand, test, and maintain.
// This analyzer provides specific guidance on how to split them.
package functionsize

import (
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `enforce function size limits with refactoring advice

Functions should be small and focused. This analyzer flags functions whose
body spans more than -max-lines lines and suggests how to split them, based
on what the body contains.

Initialization and entry point functions (Init*, Setup*, Load*, main, Run,
RunE, Reconcile, ServeHTTP) may be half as long again.

Long functions often indicate:
1. Multiple responsibilities (extract into separate functions)
2. Deep nesting (use early returns)
3. Repeated patterns (extract helper functions)
4. Complex conditionals (use lookup tables)

Test files are not checked.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1015",
	Name:             "functionsize",
	Title:            "enforce function size limits with refactoring advice",
	Message:          "function %s is %d lines (max %d); %s",
	Severity:         rule.Minor,
	Category:         rule.Maintainability,
	EnabledByDefault: true,
	Configurable:     true,
	Doc:              Doc,
}

var maxLines = 80

var Analyzer = rule.New(Descriptor, initialize, rule.WithFlags(func(fs *flag.FlagSet) {
	fs.IntVar(&maxLines, "max-lines", maxLines, "maximum number of lines of a function body")
}))

// exemptFuncPrefixes are function name prefixes that are allowed to be longer.
// These functions often wire up several related components.
var exemptFuncPrefixes = []string{"Init", "Setup", "setup", "load", "Load"}

var exemptFuncNames = map[string]bool{
	"Reconcile": true,
	"runE":      true,
	"Run":       true,
	"RunE":      true,
	"main":      true,
	"ServeHTTP": true,
}

func initialize(c *rule.Context) {
	c.RegisterNodeAction(func(cur inspector.Cursor) {
		fn, ok := cur.Node().(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			return
		}
		if strings.HasSuffix(c.Pass.Fset.Position(fn.Pos()).Filename, "_test.go") {
			return
		}

		lines := c.Pass.Fset.Position(fn.Body.Rbrace).Line - c.Pass.Fset.Position(fn.Body.Lbrace).Line + 1
		limit := maxLines
		if isExemptFunction(fn.Name.Name) {
			limit += maxLines / 2
		}
		if lines <= limit {
			return
		}

		c.Report(fn.Name, fn.Name.Name, lines, limit, advise(fn.Body))
	}, (*ast.FuncDecl)(nil))
}

// isExemptFunction checks if a function name gets the extended limit.
func isExemptFunction(name string) bool {
	if exemptFuncNames[name] {
		return true
	}
	for _, prefix := range exemptFuncPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

type shape struct {
	ifs, loops, switches, errChecks int
}

func advise(body *ast.BlockStmt) string {
	var s shape
	ast.Inspect(body, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.IfStmt:
			s.ifs++
			if isErrCheck(node) {
				s.errChecks++
			}
		case *ast.ForStmt, *ast.RangeStmt:
			s.loops++
		case *ast.SwitchStmt, *ast.TypeSwitchStmt:
			s.switches++
		case *ast.FuncLit:
			return false
		}
		return true
	})

	var suggestions []string
	if s.errChecks > 5 {
		suggestions = append(suggestions, "extract error-prone operations into helper functions")
	}
	if nesting(body) > 3 {
		suggestions = append(suggestions, "reduce nesting with early returns")
	}
	if s.loops > 2 {
		suggestions = append(suggestions, "extract loop bodies into separate functions")
	}
	if s.switches > 1 {
		suggestions = append(suggestions, "consider using a lookup table")
	}
	if s.ifs > 8 {
		suggestions = append(suggestions, "extract conditional logic into well-named helper functions")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "split into smaller, focused functions with descriptive names")
	}
	return strings.Join(suggestions, "; ")
}

func isErrCheck(ifStmt *ast.IfStmt) bool {
	bin, ok := ifStmt.Cond.(*ast.BinaryExpr)
	if !ok {
		return false
	}
	for _, e := range []ast.Expr{bin.X, bin.Y} {
		if ident, ok := e.(*ast.Ident); ok && ident.Name == "err" {
			return true
		}
	}
	return false
}

// nesting is the deepest chain of control statements below n. An else-if
// stays on the level of its if; function literals are not counted.
func nesting(n ast.Node) int {
	var elseIf ast.Node
	if stmt, ok := n.(*ast.IfStmt); ok {
		if e, ok := stmt.Else.(*ast.IfStmt); ok {
			elseIf = e
		}
	}

	deepest := 0
	ast.Inspect(n, func(child ast.Node) bool {
		if child == n {
			return true
		}
		switch child.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt,
			*ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			d := nesting(child)
			if child != elseIf {
				d++
			}
			deepest = max(deepest, d)
			return false
		case *ast.FuncLit:
			return false
		}
		return true
	})
	return deepest
}

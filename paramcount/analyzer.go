// Package paramcount reports functions that take too many parameters.
package paramcount

import (
	"flag"
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `limit the number of function parameters

Functions with long parameter lists are hard to call correctly: arguments
of the same type are easily swapped and every new option changes every
caller. Group related parameters into a struct or use functional options.

The receiver does not count. Function literals are checked too.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1014",
	Name:             "paramcount",
	Title:            "limit the number of function parameters",
	Message:          "%s has %d parameters (max %d); group related parameters into a struct",
	Severity:         rule.Major,
	Category:         rule.Maintainability,
	EnabledByDefault: true,
	Configurable:     true,
	Doc:              Doc,
}

var maxParams = 7

var Analyzer = rule.New(Descriptor, initialize, rule.WithFlags(func(fs *flag.FlagSet) {
	fs.IntVar(&maxParams, "max", maxParams, "maximum number of parameters")
}))

func initialize(c *rule.Context) {
	c.RegisterNodeAction(func(cur inspector.Cursor) {
		var (
			name string
			at   ast.Node
			ft   *ast.FuncType
		)
		switch fn := cur.Node().(type) {
		case *ast.FuncDecl:
			name, at, ft = "function "+fn.Name.Name, fn.Name, fn.Type
		case *ast.FuncLit:
			name, at, ft = "function literal", fn.Type, fn.Type
		default:
			return
		}

		if n := count(ft.Params); n > maxParams {
			c.Report(at, name, n, maxParams)
		}
	}, (*ast.FuncDecl)(nil), (*ast.FuncLit)(nil))
}

func count(fields *ast.FieldList) int {
	if fields == nil {
		return 0
	}
	n := 0
	for _, f := range fields.List {
		n += max(1, len(f.Names))
	}
	return n
}

package rule

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"runtime/debug"

	"github.com/golang/glog"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/report"
)

// Action is a node callback. The cursor is only valid for the duration of
// the call.
type Action func(cur inspector.Cursor)

// Registrar accepts node actions for a set of node kinds, given as typed nil
// pointers like (*ast.CallExpr)(nil).
type Registrar interface {
	RegisterNodeAction(fn Action, kinds ...ast.Node)
}

type actionTable map[reflect.Type][]Action

func (t actionTable) add(fn Action, kinds []ast.Node) {
	for _, k := range kinds {
		rt := reflect.TypeOf(k)
		t[rt] = append(t[rt], fn)
	}
}

// Context is handed to a rule's initialize function once per package. Rules
// register their actions on it; the actions run while the package is walked
// and the compilation-end actions run after the walk.
type Context struct {
	Pass       *analysis.Pass
	Descriptor *Descriptor

	ctx      context.Context
	sink     *report.Sink
	settings settings

	actions     actionTable
	symbolStart []func(*SymbolContext)
	endActions  []func()

	symbol *SymbolContext
	faults int
}

var _ Registrar = (*Context)(nil)

func newContext(ctx context.Context, pass *analysis.Pass, d *Descriptor, s settings) *Context {
	return &Context{
		Pass:       pass,
		Descriptor: d,
		ctx:        ctx,
		settings:   s,
		sink: report.NewSink(pass, report.Options{
			Keys:      []string{d.Name, d.ID},
			Exclude:   s.exclude,
			Generated: s.generated,
		}),
		actions: make(actionTable),
	}
}

// Context returns the cancellation context of the current pass.
func (c *Context) Context() context.Context { return c.ctx }

// Info is the type information of the package under analysis.
func (c *Context) Info() *types.Info { return c.Pass.TypesInfo }

// RegisterNodeAction runs fn for every node of the given kinds.
func (c *Context) RegisterNodeAction(fn Action, kinds ...ast.Node) {
	c.actions.add(fn, kinds)
}

// RegisterSymbolStartAction runs fn when the walk enters a function
// declaration. Actions and state registered on the SymbolContext live until
// the walk leaves that declaration.
func (c *Context) RegisterSymbolStartAction(fn func(*SymbolContext)) {
	c.symbolStart = append(c.symbolStart, fn)
}

// RegisterCompilationEndAction runs fn once after every file was walked.
func (c *Context) RegisterCompilationEndAction(fn func()) {
	c.endActions = append(c.endActions, fn)
}

// Report emits a diagnostic for rng using the descriptor's message template.
func (c *Context) Report(rng analysis.Range, args ...any) {
	c.ReportRelated(rng, nil, args...)
}

// ReportRelated is Report with secondary locations.
func (c *Context) ReportRelated(rng analysis.Range, related []analysis.RelatedInformation, args ...any) {
	c.emit(rng, c.Descriptor.Format(c.settings.severity, args...), related)
}

func (c *Context) emit(rng analysis.Range, msg string, related []analysis.RelatedInformation) {
	c.sink.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: c.Descriptor.ID,
		Message:  msg,
		Related:  related,
	})
}

// SymbolContext scopes actions and state to one function declaration.
type SymbolContext struct {
	*Context

	Cursor inspector.Cursor
	Decl   *ast.FuncDecl
	// Func is nil when the declaration could not be type-checked.
	Func *types.Func

	actions    actionTable
	endActions []func()
}

// RegisterNodeAction runs fn for nodes of the given kinds inside this
// declaration only.
func (s *SymbolContext) RegisterNodeAction(fn Action, kinds ...ast.Node) {
	s.actions.add(fn, kinds)
}

// RegisterSymbolEndAction runs fn when the walk leaves the declaration.
func (s *SymbolContext) RegisterSymbolEndAction(fn func()) {
	s.endActions = append(s.endActions, fn)
}

func (c *Context) walk(in *inspector.Inspector) {
	filter := c.filter()

	for fc := range in.Root().Children() {
		file, ok := fc.Node().(*ast.File)
		if !ok || c.sink.Skip(file) {
			continue
		}
		if err := c.ctx.Err(); err != nil {
			glog.V(1).Infof("%s: walk cancelled: %v", c.Descriptor.Name, err)
			return
		}

		fc.Inspect(filter, func(cur inspector.Cursor) bool {
			if decl, ok := cur.Node().(*ast.FuncDecl); ok && len(c.symbolStart) > 0 {
				c.visitSymbol(cur, decl, filter)
				return false
			}
			c.dispatch(cur)
			return true
		})
	}
}

// filter returns the node kinds the walk must visit. Symbol actions are
// registered lazily, so with symbol-start actions every node is visited.
func (c *Context) filter() []ast.Node {
	if len(c.symbolStart) > 0 {
		return nil
	}
	kinds := make([]ast.Node, 0, len(c.actions))
	for rt := range c.actions {
		kinds = append(kinds, reflect.Zero(rt).Interface().(ast.Node))
	}
	return kinds
}

func (c *Context) visitSymbol(cur inspector.Cursor, decl *ast.FuncDecl, filter []ast.Node) {
	fn, _ := c.Pass.TypesInfo.Defs[decl.Name].(*types.Func)
	sym := &SymbolContext{
		Context: c,
		Cursor:  cur,
		Decl:    decl,
		Func:    fn,
		actions: make(actionTable),
	}

	for _, start := range c.symbolStart {
		c.safely(decl, func() { start(sym) })
	}

	c.symbol = sym
	cur.Inspect(filter, func(d inspector.Cursor) bool {
		c.dispatch(d)
		return true
	})
	c.symbol = nil

	for _, end := range sym.endActions {
		c.safely(decl, end)
	}
}

func (c *Context) dispatch(cur inspector.Cursor) {
	n := cur.Node()
	rt := reflect.TypeOf(n)
	for _, fn := range c.actions[rt] {
		c.safely(n, func() { fn(cur) })
	}
	if c.symbol != nil {
		for _, fn := range c.symbol.actions[rt] {
			c.safely(n, func() { fn(cur) })
		}
	}
}

func (c *Context) finish() {
	for _, end := range c.endActions {
		c.safely(nil, end)
	}
}

// safely runs fn, turning a panic into a logged fault so that one broken
// action does not stop the rest of the walk.
func (c *Context) safely(at ast.Node, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.fault(at, r)
		}
	}()
	fn()
}

func (c *Context) fault(at ast.Node, r any) {
	c.faults++

	pos := token.NoPos
	if at != nil {
		pos = at.Pos()
	} else if len(c.Pass.Files) > 0 {
		pos = c.Pass.Files[0].Name.Pos()
	}

	glog.Errorf("%s: internal error at %s: %v\n%s", c.Descriptor, c.Pass.Fset.Position(pos), r, debug.Stack())

	if c.settings.internalErrors && pos.IsValid() {
		c.Pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: "internal",
			Message:  fmt.Sprintf("Internal Error: %s: %v", c.Descriptor.Name, r),
		})
	}
}

package track

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// InvocationSite is a call expression. Type conversions are not sites.
type InvocationSite struct {
	Site
	Call *ast.CallExpr
	// Func is the called function or method, nil for builtins and calls of
	// function values.
	Func *types.Func
	// Signature is the type of the callee expression; for method
	// expressions it includes the receiver parameter.
	Signature *types.Signature
	Args      Arguments

	bound bool
}

// InvocationTracker matches calls.
type InvocationTracker struct {
	Tracker[InvocationSite]
}

// NewInvocationTracker returns a tracker over call expressions.
func NewInvocationTracker() *InvocationTracker {
	return &InvocationTracker{Tracker[InvocationSite]{
		kinds: []ast.Node{(*ast.CallExpr)(nil)},
		build: buildInvocation,
	}}
}

func buildInvocation(s Site) (InvocationSite, bool) {
	call, ok := s.Node().(*ast.CallExpr)
	if !ok {
		return InvocationSite{}, false
	}
	info := s.Info()
	if tv, ok := info.Types[call.Fun]; ok && tv.IsType() {
		return InvocationSite{}, false
	}

	site := InvocationSite{Site: s, Call: call}
	if fn, ok := typeutil.Callee(info, call).(*types.Func); ok {
		site.Func = fn.Origin()
	}
	if t := info.TypeOf(call.Fun); t != nil {
		site.Signature, _ = t.Underlying().(*types.Signature)
	}
	site.Args, site.bound = BindArguments(info, call, site.Signature)
	return site, true
}

// MatchMethod matches calls of any of members.
func (t *InvocationTracker) MatchMethod(members ...Member) Predicate[InvocationSite] {
	set := NewMemberSet(members...)
	return func(s InvocationSite) bool {
		if s.Func == nil {
			return false
		}
		m, ok := MemberOf(s.Func)
		return ok && set.Contains(m)
	}
}

// MatchFunction is MatchMethod for the textual member forms.
func (t *InvocationTracker) MatchFunction(names ...string) Predicate[InvocationSite] {
	members := make([]Member, len(names))
	for i, n := range names {
		members[i] = MustParseMember(n)
	}
	return t.MatchMethod(members...)
}

// MethodNameIs matches callees by bare name, regardless of package.
func (t *InvocationTracker) MethodNameIs(names ...string) Predicate[InvocationSite] {
	return func(s InvocationSite) bool {
		if s.Func == nil {
			return false
		}
		for _, n := range names {
			if s.Func.Name() == n {
				return true
			}
		}
		return false
	}
}

// ArgumentAtIndexIs matches when the i-th argument satisfies p.
func (t *InvocationTracker) ArgumentAtIndexIs(i int, p Predicate[Value]) Predicate[InvocationSite] {
	return func(s InvocationSite) bool {
		if !s.bound {
			return false
		}
		e, ok := s.Args.At(i)
		return ok && p(s.Value(e))
	}
}

// ArgumentAtIndexEquals matches when the i-th argument is the constant lit.
func (t *InvocationTracker) ArgumentAtIndexEquals(i int, lit any) Predicate[InvocationSite] {
	return t.ArgumentAtIndexIs(i, Equals(lit))
}

// ArgumentNamedIs matches when the first argument bound to the parameter
// called name satisfies p. Parameter names come from the callee signature,
// so calls of functions declaring the parameter at different positions are
// matched alike.
func (t *InvocationTracker) ArgumentNamedIs(name string, p Predicate[Value]) Predicate[InvocationSite] {
	return t.ArgumentNamedAtIs(name, 0, p)
}

// ArgumentNamedAtIs is ArgumentNamedIs for the k-th argument bound to a
// variadic parameter.
func (t *InvocationTracker) ArgumentNamedAtIs(name string, k int, p Predicate[Value]) Predicate[InvocationSite] {
	return func(s InvocationSite) bool {
		if !s.bound {
			return false
		}
		args := s.Args.Named(name)
		return k >= 0 && k < len(args) && p(s.Value(args[k]))
	}
}

// ArgumentCountIs matches calls with exactly n syntactic arguments.
func (t *InvocationTracker) ArgumentCountIs(n int) Predicate[InvocationSite] {
	return func(s InvocationSite) bool { return s.bound && s.Args.Len() == n }
}

// IsInsideLoop matches calls in a loop body.
func (t *InvocationTracker) IsInsideLoop() Predicate[InvocationSite] {
	return func(s InvocationSite) bool { return s.InsideLoop() }
}

package track

import (
	"go/ast"
	"go/types"
)

// ObjectCreationSite is a composite literal of a named type, with or without
// a leading &, or a new(T) call.
type ObjectCreationSite struct {
	Site
	// Lit is nil for new(T).
	Lit  *ast.CompositeLit
	Type *types.Named
	// Struct is the underlying struct, nil for non-struct types.
	Struct *types.Struct
}

// ObjectCreationTracker matches object creations.
type ObjectCreationTracker struct {
	Tracker[ObjectCreationSite]
}

// NewObjectCreationTracker returns a tracker over composite literals and
// new calls.
func NewObjectCreationTracker() *ObjectCreationTracker {
	return &ObjectCreationTracker{Tracker[ObjectCreationSite]{
		kinds: []ast.Node{(*ast.CompositeLit)(nil), (*ast.CallExpr)(nil)},
		build: buildObjectCreation,
	}}
}

func buildObjectCreation(s Site) (ObjectCreationSite, bool) {
	info := s.Info()
	site := ObjectCreationSite{Site: s}

	var t types.Type
	switch n := s.Node().(type) {
	case *ast.CompositeLit:
		site.Lit = n
		t = info.TypeOf(n)
	case *ast.CallExpr:
		if !isBuiltin(info, n.Fun, "new") || len(n.Args) != 1 {
			return site, false
		}
		t = info.TypeOf(n.Args[0])
	default:
		return site, false
	}

	site.Type = namedOf(t)
	if site.Type == nil {
		return site, false
	}
	site.Struct, _ = site.Type.Underlying().(*types.Struct)
	return site, true
}

func isBuiltin(info *types.Info, fun ast.Expr, name string) bool {
	id, ok := ast.Unparen(fun).(*ast.Ident)
	if !ok {
		return false
	}
	b, ok := info.Uses[id].(*types.Builtin)
	return ok && b.Name() == name
}

// MatchConstructor matches creations of any of the named types.
func (t *ObjectCreationTracker) MatchConstructor(typeNames ...Member) Predicate[ObjectCreationSite] {
	set := NewMemberSet(typeNames...)
	return func(s ObjectCreationSite) bool {
		m, ok := MemberOf(s.Type.Obj())
		return ok && set.Contains(m)
	}
}

// ArgumentAtIndexIs matches when the literal element for struct field i
// satisfies p. Omitted fields and new(T) never match.
func (t *ObjectCreationTracker) ArgumentAtIndexIs(i int, p Predicate[Value]) Predicate[ObjectCreationSite] {
	return func(s ObjectCreationSite) bool {
		e, ok := FieldElement(s.Lit, s.Struct, i)
		return ok && p(s.Value(e))
	}
}

// ArgumentAtIndexEquals matches when field i is initialized to constant lit.
func (t *ObjectCreationTracker) ArgumentAtIndexEquals(i int, lit any) Predicate[ObjectCreationSite] {
	return t.ArgumentAtIndexIs(i, Equals(lit))
}

// FieldIs is ArgumentAtIndexIs keyed on the field name.
func (t *ObjectCreationTracker) FieldIs(name string, p Predicate[Value]) Predicate[ObjectCreationSite] {
	return func(s ObjectCreationSite) bool {
		e, ok := FieldElement(s.Lit, s.Struct, FieldIndex(s.Struct, name))
		return ok && p(s.Value(e))
	}
}

// FieldIsSet matches literals that initialize the field.
func (t *ObjectCreationTracker) FieldIsSet(name string) Predicate[ObjectCreationSite] {
	return t.FieldIs(name, func(Value) bool { return true })
}

// EffectiveFieldIs matches when the value the field effectively holds, from
// the literal or a later assignment in the same block, satisfies p.
func (t *ObjectCreationTracker) EffectiveFieldIs(name string, p Predicate[Value]) Predicate[ObjectCreationSite] {
	return func(s ObjectCreationSite) bool {
		v, ok := AssignedField(s, name)
		return ok && p(v)
	}
}

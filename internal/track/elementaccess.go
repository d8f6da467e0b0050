package track

import (
	"go/ast"
	"go/types"
)

// ElementAccessSite is an index expression on a map, slice or array of a
// named type, such as http.Header.
type ElementAccessSite struct {
	Site
	Index     *ast.IndexExpr
	Container *types.Named
}

// ElementAccessTracker matches index expressions.
type ElementAccessTracker struct {
	Tracker[ElementAccessSite]
}

// NewElementAccessTracker returns a tracker over index expressions.
func NewElementAccessTracker() *ElementAccessTracker {
	return &ElementAccessTracker{Tracker[ElementAccessSite]{
		kinds: []ast.Node{(*ast.IndexExpr)(nil)},
		build: buildElementAccess,
	}}
}

func buildElementAccess(s Site) (ElementAccessSite, bool) {
	idx, ok := s.Node().(*ast.IndexExpr)
	if !ok {
		return ElementAccessSite{}, false
	}
	info := s.Info()
	if tv, ok := info.Types[idx.X]; !ok || tv.IsType() {
		return ElementAccessSite{}, false
	}

	t := info.TypeOf(idx.X)
	named := namedOf(t)
	if named == nil {
		return ElementAccessSite{}, false
	}
	switch named.Underlying().(type) {
	case *types.Map, *types.Slice, *types.Array:
	default:
		return ElementAccessSite{}, false
	}
	return ElementAccessSite{Site: s, Index: idx, Container: named}, true
}

// MatchIndexer matches index expressions on any of the named types.
func (t *ElementAccessTracker) MatchIndexer(typeNames ...Member) Predicate[ElementAccessSite] {
	set := NewMemberSet(typeNames...)
	return func(s ElementAccessSite) bool {
		m, ok := MemberOf(s.Container.Obj())
		return ok && set.Contains(m)
	}
}

// ArgumentAtIndexIs matches when the index argument satisfies p. Index
// expressions have exactly one argument, so only i == 0 can match.
func (t *ElementAccessTracker) ArgumentAtIndexIs(i int, p Predicate[Value]) Predicate[ElementAccessSite] {
	return func(s ElementAccessSite) bool {
		return i == 0 && p(s.Value(s.Index.Index))
	}
}

// IsAssignment matches elements written by an assignment.
func (t *ElementAccessTracker) IsAssignment() Predicate[ElementAccessSite] {
	return func(s ElementAccessSite) bool { return isAssigned(s.Site) }
}

// AssignedValueIs matches assignment targets whose assigned value satisfies p.
func (t *ElementAccessTracker) AssignedValueIs(p Predicate[Value]) Predicate[ElementAccessSite] {
	return func(s ElementAccessSite) bool {
		v, ok := AssignedValue(s.Site)
		return ok && p(v)
	}
}

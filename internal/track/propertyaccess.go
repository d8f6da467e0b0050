package track

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
)

// PropertyAccessSite is a selector that resolves to a struct field or a
// package-level variable.
type PropertyAccessSite struct {
	Site
	Selector *ast.SelectorExpr
	Member   Member
}

// PropertyAccessTracker matches field and variable selectors.
type PropertyAccessTracker struct {
	Tracker[PropertyAccessSite]
}

// NewPropertyAccessTracker returns a tracker over selector expressions.
func NewPropertyAccessTracker() *PropertyAccessTracker {
	return &PropertyAccessTracker{Tracker[PropertyAccessSite]{
		kinds: []ast.Node{(*ast.SelectorExpr)(nil)},
		build: buildPropertyAccess,
	}}
}

func buildPropertyAccess(s Site) (PropertyAccessSite, bool) {
	sel, ok := s.Node().(*ast.SelectorExpr)
	if !ok {
		return PropertyAccessSite{}, false
	}
	info := s.Info()
	site := PropertyAccessSite{Site: s, Selector: sel}

	if selection, ok := info.Selections[sel]; ok {
		if selection.Kind() != types.FieldVal {
			return site, false
		}
		site.Member, ok = MemberOfSelection(selection)
		return site, ok
	}

	v, ok := info.Uses[sel.Sel].(*types.Var)
	if !ok {
		return site, false
	}
	site.Member, ok = MemberOf(v)
	return site, ok
}

// MatchProperty matches selectors of any of members.
func (t *PropertyAccessTracker) MatchProperty(members ...Member) Predicate[PropertyAccessSite] {
	set := NewMemberSet(members...)
	return func(s PropertyAccessSite) bool { return set.Contains(s.Member) }
}

// IsAssignment matches selectors written by an assignment or ++/--.
func (t *PropertyAccessTracker) IsAssignment() Predicate[PropertyAccessSite] {
	return func(s PropertyAccessSite) bool { return isAssigned(s.Site) }
}

// IsRead matches selectors that are not assignment targets.
func (t *PropertyAccessTracker) IsRead() Predicate[PropertyAccessSite] {
	return func(s PropertyAccessSite) bool { return !isAssigned(s.Site) }
}

// AssignedValueIs matches assignment targets whose assigned value satisfies p.
func (t *PropertyAccessTracker) AssignedValueIs(p Predicate[Value]) Predicate[PropertyAccessSite] {
	return func(s PropertyAccessSite) bool {
		v, ok := AssignedValue(s.Site)
		return ok && p(v)
	}
}

func isAssigned(s Site) bool {
	kind, _ := s.Cursor.ParentEdge()
	return kind == edge.AssignStmt_Lhs || kind == edge.IncDecStmt_X
}

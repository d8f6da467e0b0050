package track

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// ctxCheckInterval is how many statements AssignedField visits between
// cancellation checks.
const ctxCheckInterval = 64

// AssignedValue returns the value assigned to the site when the site is the
// target of a plain assignment, as in h["k"] = v or x.F = v.
func AssignedValue(s Site) (Value, bool) {
	kind, i := s.Cursor.ParentEdge()
	if kind != edge.AssignStmt_Lhs {
		return Value{}, false
	}
	as, ok := s.Cursor.Parent().Node().(*ast.AssignStmt)
	if !ok || as.Tok != token.ASSIGN || len(as.Lhs) != len(as.Rhs) {
		return Value{}, false
	}
	return s.Value(as.Rhs[i]), true
}

// AssignedField returns the value field effectively holds after the object
// of s was created.
//
// The value comes from the literal element unless a later statement of the
// same block assigns the field through the local variable the object was
// bound to, in which case the last such assignment wins. The lookup gives up
// and reports false when the field is omitted and never assigned, or when
// the variable is assigned inside nested control flow or a closure, has its
// address taken, or the walk is cancelled.
func AssignedField(s ObjectCreationSite, field string) (Value, bool) {
	idx := FieldIndex(s.Struct, field)
	if idx < 0 {
		return Value{}, false
	}

	var (
		val   ast.Expr
		known bool
	)
	if e, ok := FieldElement(s.Lit, s.Struct, idx); ok {
		val, known = e, true
	}

	obj, stmt := bindingOf(s.Site)
	if obj == nil {
		return s.Value(val), known
	}

	list, at := statementList(stmt)
	info := s.Info()
	for n, st := range list[at+1:] {
		if n%ctxCheckInterval == ctxCheckInterval-1 && s.Ctx != nil && s.Ctx.Err() != nil {
			return Value{}, false
		}

		if as, ok := st.(*ast.AssignStmt); ok {
			if rhs, hit := fieldStore(info, as, obj, field); hit {
				if rhs == nil {
					return Value{}, false
				}
				val, known = rhs, true
				continue
			}
		}

		switch effectOn(info, st, obj, field) {
		case rebound:
			return s.Value(val), known
		case escaped:
			return Value{}, false
		}
	}

	return s.Value(val), known
}

// bindingOf finds the local variable an object creation is directly bound
// to, and the statement cursor of that binding.
func bindingOf(s Site) (*types.Var, inspector.Cursor) {
	cur := s.Cursor
	for {
		kind, _ := cur.ParentEdge()
		if kind != edge.ParenExpr_X && kind != edge.UnaryExpr_X {
			break
		}
		if u, ok := cur.Parent().Node().(*ast.UnaryExpr); ok && u.Op != token.AND {
			return nil, inspector.Cursor{}
		}
		cur = cur.Parent()
	}

	info := s.Info()
	kind, i := cur.ParentEdge()
	var (
		id   *ast.Ident
		stmt inspector.Cursor
	)
	switch kind {
	case edge.AssignStmt_Rhs:
		as := cur.Parent().Node().(*ast.AssignStmt)
		if len(as.Lhs) != len(as.Rhs) {
			return nil, inspector.Cursor{}
		}
		id, _ = as.Lhs[i].(*ast.Ident)
		stmt = cur.Parent()
	case edge.ValueSpec_Values:
		spec := cur.Parent().Node().(*ast.ValueSpec)
		if len(spec.Names) != len(spec.Values) {
			return nil, inspector.Cursor{}
		}
		id = spec.Names[i]
		stmt = cur.Parent().Parent().Parent()
		if _, ok := stmt.Node().(*ast.DeclStmt); !ok {
			return nil, inspector.Cursor{}
		}
	default:
		return nil, inspector.Cursor{}
	}
	if id == nil {
		return nil, inspector.Cursor{}
	}

	v, ok := info.ObjectOf(id).(*types.Var)
	if !ok || v.Pkg() == nil || v.Parent() == v.Pkg().Scope() {
		return nil, inspector.Cursor{}
	}
	return v, stmt
}

// statementList returns the statements enclosing stmt and its index.
func statementList(stmt inspector.Cursor) ([]ast.Stmt, int) {
	kind, i := stmt.ParentEdge()
	switch kind {
	case edge.BlockStmt_List:
		return stmt.Parent().Node().(*ast.BlockStmt).List, i
	case edge.CaseClause_Body:
		return stmt.Parent().Node().(*ast.CaseClause).Body, i
	case edge.CommClause_Body:
		return stmt.Parent().Node().(*ast.CommClause).Body, i
	}
	return nil, -1
}

// fieldStore recognizes a top-level "v.field = rhs". hit with a nil rhs
// means the store cannot be resolved, e.g. a compound assignment.
func fieldStore(info *types.Info, as *ast.AssignStmt, v *types.Var, field string) (rhs ast.Expr, hit bool) {
	for i, lhs := range as.Lhs {
		if !isFieldOf(info, lhs, v, field) {
			continue
		}
		if as.Tok != token.ASSIGN || len(as.Lhs) != len(as.Rhs) {
			return nil, true
		}
		rhs = as.Rhs[i]
		hit = true
	}
	return rhs, hit
}

type effect int

const (
	untouched effect = iota
	rebound
	escaped
)

// effectOn classifies what a statement does to v or v.field.
func effectOn(info *types.Info, st ast.Stmt, v *types.Var, field string) effect {
	if as, ok := st.(*ast.AssignStmt); ok && as.Tok == token.ASSIGN {
		for _, lhs := range as.Lhs {
			if isVar(info, lhs, v) {
				return rebound
			}
		}
	}

	result := untouched
	ast.Inspect(st, func(n ast.Node) bool {
		if result == escaped {
			return false
		}
		switch n := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				if isVar(info, lhs, v) || isFieldOf(info, lhs, v, field) {
					result = escaped
				}
			}
		case *ast.IncDecStmt:
			if isFieldOf(info, n.X, v, field) {
				result = escaped
			}
		case *ast.UnaryExpr:
			if n.Op == token.AND && isFieldOf(info, n.X, v, field) {
				result = escaped
			}
		}
		return true
	})
	return result
}

func isVar(info *types.Info, e ast.Expr, v *types.Var) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	return ok && info.ObjectOf(id) == v
}

func isFieldOf(info *types.Info, e ast.Expr, v *types.Var, field string) bool {
	sel, ok := ast.Unparen(e).(*ast.SelectorExpr)
	return ok && sel.Sel.Name == field && isVar(info, sel.X, v)
}

// BoundToCreation reports whether e names a variable of the function
// enclosing the site whose every binding in that function is a creation of
// one of typeNames, as in c := &http.Cookie{...}. Variables bound from a
// call, a parameter, a range clause or a declaration without a value are
// not.
func (s Site) BoundToCreation(e ast.Expr, typeNames ...Member) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}
	info := s.Info()
	v, ok := info.ObjectOf(id).(*types.Var)
	if !ok {
		return false
	}
	_, body, ok := s.EnclosingFunc()
	if !ok || v.Pos() < body.Pos() || v.Pos() >= body.End() {
		return false
	}

	set := NewMemberSet(typeNames...)
	bindings, created := 0, true
	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.AssignStmt:
			for i, lhs := range n.Lhs {
				if !isVar(info, lhs, v) {
					continue
				}
				bindings++
				if n.Tok != token.DEFINE && n.Tok != token.ASSIGN || len(n.Lhs) != len(n.Rhs) ||
					!isCreationOf(info, n.Rhs[i], set) {
					created = false
				}
			}
		case *ast.ValueSpec:
			for i, name := range n.Names {
				if info.Defs[name] != v {
					continue
				}
				bindings++
				if len(n.Values) != len(n.Names) || !isCreationOf(info, n.Values[i], set) {
					created = false
				}
			}
		case *ast.RangeStmt:
			if isVar(info, n.Key, v) || isVar(info, n.Value, v) {
				bindings++
				created = false
			}
		}
		return created
	})
	return created && bindings > 0
}

// isCreationOf matches T{...}, &T{...} and new(T) for T in set.
func isCreationOf(info *types.Info, e ast.Expr, set MemberSet) bool {
	e = ast.Unparen(e)
	if u, ok := e.(*ast.UnaryExpr); ok && u.Op == token.AND {
		e = ast.Unparen(u.X)
	}
	switch n := e.(type) {
	case *ast.CompositeLit:
	case *ast.CallExpr:
		if !isBuiltin(info, n.Fun, "new") || len(n.Args) != 1 {
			return false
		}
	default:
		return false
	}
	m, ok := TypeMember(info.TypeOf(e))
	return ok && set.Contains(m)
}

package track

import (
	"go/ast"
	"go/types"
)

// Arguments binds the syntactic arguments of a call to the parameters of its
// signature.
type Arguments struct {
	sig    *types.Signature
	args   []ast.Expr
	spread bool
}

// BindArguments binds call to sig. It fails when sig is nil or when a single
// multi-valued call supplies all arguments, as in f(g()).
func BindArguments(info *types.Info, call *ast.CallExpr, sig *types.Signature) (Arguments, bool) {
	if sig == nil {
		return Arguments{}, false
	}
	if len(call.Args) == 1 && sig.Params().Len() > 1 {
		if tuple, ok := info.TypeOf(call.Args[0]).(*types.Tuple); ok && tuple.Len() > 1 {
			return Arguments{}, false
		}
	}
	return Arguments{sig: sig, args: call.Args, spread: call.Ellipsis.IsValid()}, true
}

// Len is the number of syntactic arguments.
func (a Arguments) Len() int { return len(a.args) }

// At returns the i-th syntactic argument. A slice spread with ... has no
// individual elements and is never returned.
func (a Arguments) At(i int) (ast.Expr, bool) {
	if i < 0 || i >= len(a.args) || (a.spread && i == len(a.args)-1) {
		return nil, false
	}
	return a.args[i], true
}

// Param returns the arguments bound to parameter i. The variadic parameter
// binds every trailing argument; a spread slice binds none.
func (a Arguments) Param(i int) []ast.Expr {
	if a.sig == nil {
		return nil
	}
	n := a.sig.Params().Len()
	if i < 0 || i >= n {
		return nil
	}
	if a.sig.Variadic() && i == n-1 {
		if a.spread || len(a.args) <= i {
			return nil
		}
		return a.args[i:]
	}
	if i < len(a.args) {
		return a.args[i : i+1]
	}
	return nil
}

// Named returns the arguments bound to the parameter called name.
func (a Arguments) Named(name string) []ast.Expr {
	if i := ParamIndex(a.sig, name); i >= 0 {
		return a.Param(i)
	}
	return nil
}

// ParamIndex is the index of the parameter called name, or -1.
func ParamIndex(sig *types.Signature, name string) int {
	if sig == nil || name == "" || name == "_" {
		return -1
	}
	params := sig.Params()
	for i := range params.Len() {
		if params.At(i).Name() == name {
			return i
		}
	}
	return -1
}

// FieldIndex is the index of the struct field called name, or -1.
func FieldIndex(st *types.Struct, name string) int {
	if st == nil {
		return -1
	}
	for i := range st.NumFields() {
		if st.Field(i).Name() == name {
			return i
		}
	}
	return -1
}

// FieldElement returns the element of a struct literal that initializes
// field index. Keyed literals are searched by field name, positional ones by
// position. An omitted field is not resolved.
func FieldElement(lit *ast.CompositeLit, st *types.Struct, index int) (ast.Expr, bool) {
	if lit == nil || st == nil || index < 0 || index >= st.NumFields() || len(lit.Elts) == 0 {
		return nil, false
	}

	if _, keyed := lit.Elts[0].(*ast.KeyValueExpr); !keyed {
		if index < len(lit.Elts) {
			return lit.Elts[index], true
		}
		return nil, false
	}

	name := st.Field(index).Name()
	for _, e := range lit.Elts {
		kv, ok := e.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if id, ok := kv.Key.(*ast.Ident); ok && id.Name == name {
			return kv.Value, true
		}
	}
	return nil, false
}

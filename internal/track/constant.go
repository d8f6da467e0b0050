package track

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"
)

// Value is an expression paired with the type information that folds it.
type Value struct {
	Expr ast.Expr
	Info *types.Info
}

// Const returns the folded constant of the expression, or nil when the
// expression is not constant or was not type-checked.
func (v Value) Const() constant.Value {
	if v.Expr == nil || v.Info == nil {
		return nil
	}
	tv, ok := v.Info.Types[v.Expr]
	if !ok || tv.Value == nil || tv.Value.Kind() == constant.Unknown {
		return nil
	}
	return tv.Value
}

// Type is the type of the expression, or nil.
func (v Value) Type() types.Type {
	if v.Expr == nil || v.Info == nil {
		return nil
	}
	return v.Info.TypeOf(v.Expr)
}

// IsConstant matches expressions with a known constant value.
func IsConstant(v Value) bool { return v.Const() != nil }

// IsNotConstant matches type-checked expressions without a constant value.
func IsNotConstant(v Value) bool {
	return v.Type() != nil && v.Const() == nil
}

// IsConstTrue matches the boolean constant true.
func IsConstTrue(v Value) bool {
	c := v.Const()
	return c != nil && c.Kind() == constant.Bool && constant.BoolVal(c)
}

// IsConstFalse matches the boolean constant false.
func IsConstFalse(v Value) bool {
	c := v.Const()
	return c != nil && c.Kind() == constant.Bool && !constant.BoolVal(c)
}

// ConstStringMatches matches string constants accepted by fn.
func ConstStringMatches(fn func(string) bool) Predicate[Value] {
	return func(v Value) bool {
		c := v.Const()
		return c != nil && c.Kind() == constant.String && fn(constant.StringVal(c))
	}
}

// ConstStringContains matches string constants containing sub.
func ConstStringContains(sub string) Predicate[Value] {
	return ConstStringMatches(func(s string) bool { return strings.Contains(s, sub) })
}

// ConstStringEqualFold matches string constants equal to one of ss under
// Unicode case folding.
func ConstStringEqualFold(ss ...string) Predicate[Value] {
	return ConstStringMatches(func(s string) bool {
		for _, want := range ss {
			if strings.EqualFold(s, want) {
				return true
			}
		}
		return false
	})
}

// ConstIntMatches matches integer constants representable as int64 and
// accepted by fn.
func ConstIntMatches(fn func(int64) bool) Predicate[Value] {
	return func(v Value) bool {
		c := v.Const()
		if c == nil {
			return false
		}
		c = constant.ToInt(c)
		if c.Kind() != constant.Int {
			return false
		}
		i, exact := constant.Int64Val(c)
		return exact && fn(i)
	}
}

// Equals matches constants equal to lit. lit may be a bool, string, any Go
// integer type or float64; other types never match.
func Equals(lit any) Predicate[Value] {
	want := makeConst(lit)
	return func(v Value) bool {
		c := v.Const()
		return c != nil && want != nil && equalConst(c, want)
	}
}

// ElementsAny matches a composite literal when any element value satisfies
// p, and any other expression when p matches it directly.
func ElementsAny(p Predicate[Value]) Predicate[Value] {
	return func(v Value) bool {
		lit, ok := ast.Unparen(v.Expr).(*ast.CompositeLit)
		if !ok {
			return p(v)
		}
		for _, e := range lit.Elts {
			if kv, ok := e.(*ast.KeyValueExpr); ok {
				e = kv.Value
			}
			if p(Value{Expr: e, Info: v.Info}) {
				return true
			}
		}
		return false
	}
}

func makeConst(lit any) constant.Value {
	switch x := lit.(type) {
	case bool, string, int64, uint64, float64:
		return constant.Make(x)
	case int:
		return constant.MakeInt64(int64(x))
	case int8:
		return constant.MakeInt64(int64(x))
	case int16:
		return constant.MakeInt64(int64(x))
	case int32:
		return constant.MakeInt64(int64(x))
	case uint:
		return constant.MakeUint64(uint64(x))
	case uint8:
		return constant.MakeUint64(uint64(x))
	case uint16:
		return constant.MakeUint64(uint64(x))
	case uint32:
		return constant.MakeUint64(uint64(x))
	}
	return nil
}

func equalConst(x, y constant.Value) bool {
	if x.Kind() == y.Kind() || (numeric(x) && numeric(y)) {
		return constant.Compare(x, token.EQL, y)
	}
	return false
}

func numeric(c constant.Value) bool {
	switch c.Kind() {
	case constant.Int, constant.Float:
		return true
	}
	return false
}

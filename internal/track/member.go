package track

import (
	"fmt"
	"go/types"
	"strings"
)

// Member names a package-level declaration or a member of a named type.
//
// Textual forms accepted by ParseMember:
//
//	crypto/md5.New                 package-level func, var or type
//	net/http.Cookie.Secure         field or method of a named type
//	(*net/http.Client).Do          same, in method expression syntax
type Member struct {
	Path     string
	Receiver string
	Name     string
}

func (m Member) String() string {
	if m.Receiver == "" {
		return m.Path + "." + m.Name
	}
	return "(" + m.Path + "." + m.Receiver + ")." + m.Name
}

// ParseMember parses the textual form of a member.
func ParseMember(s string) (Member, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "(") {
		end := strings.Index(s, ")")
		if end < 0 {
			return Member{}, fmt.Errorf("member %q: unbalanced parenthesis", s)
		}
		recv := strings.TrimPrefix(s[1:end], "*")
		name, ok := strings.CutPrefix(s[end+1:], ".")
		dot := strings.LastIndex(recv, ".")
		if !ok || name == "" || dot <= 0 || dot == len(recv)-1 {
			return Member{}, fmt.Errorf("member %q: want (path.Type).Name", s)
		}
		return Member{Path: recv[:dot], Receiver: recv[dot+1:], Name: name}, nil
	}

	slash := strings.LastIndex(s, "/")
	dot := strings.Index(s[slash+1:], ".")
	if dot <= 0 {
		return Member{}, fmt.Errorf("member %q: want path.Name", s)
	}
	dot += slash + 1
	path, rest := s[:dot], s[dot+1:]

	if recv, name, ok := strings.Cut(rest, "."); ok {
		if recv == "" || name == "" || strings.Contains(name, ".") {
			return Member{}, fmt.Errorf("member %q: want path.Type.Name", s)
		}
		return Member{Path: path, Receiver: recv, Name: name}, nil
	}
	if rest == "" {
		return Member{}, fmt.Errorf("member %q: empty name", s)
	}
	return Member{Path: path, Name: rest}, nil
}

// MustParseMember is ParseMember for static tables; it panics on error.
func MustParseMember(s string) Member {
	m, err := ParseMember(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MemberOf names a function, method, package-level variable or type name.
// Struct fields need the selection they were reached through; see
// MemberOfSelection.
func MemberOf(obj types.Object) (Member, bool) {
	if obj == nil || obj.Pkg() == nil {
		return Member{}, false
	}

	switch o := obj.(type) {
	case *types.Func:
		o = o.Origin()
		sig, ok := o.Type().(*types.Signature)
		if !ok {
			return Member{}, false
		}
		if recv := sig.Recv(); recv != nil {
			named := namedOf(recv.Type())
			if named == nil {
				return Member{}, false
			}
			return Member{Path: o.Pkg().Path(), Receiver: named.Obj().Name(), Name: o.Name()}, true
		}
		return Member{Path: o.Pkg().Path(), Name: o.Name()}, true

	case *types.Var:
		if o.IsField() || o.Parent() != o.Pkg().Scope() {
			return Member{}, false
		}
		return Member{Path: o.Pkg().Path(), Name: o.Name()}, true

	case *types.TypeName:
		return Member{Path: o.Pkg().Path(), Name: o.Name()}, true
	}

	return Member{}, false
}

// MemberOfSelection names the field or method a selector resolved to. For
// promoted fields the receiver is the struct that declares the field.
func MemberOfSelection(sel *types.Selection) (Member, bool) {
	if sel == nil {
		return Member{}, false
	}
	if sel.Kind() != types.FieldVal {
		return MemberOf(sel.Obj())
	}

	t := sel.Recv()
	index := sel.Index()
	for i, idx := range index {
		st, ok := structOf(t)
		if !ok || idx >= st.NumFields() {
			return Member{}, false
		}
		f := st.Field(idx)
		if i < len(index)-1 {
			t = f.Type()
			continue
		}
		owner := namedOf(t)
		if owner == nil || owner.Obj().Pkg() == nil {
			return Member{}, false
		}
		return Member{Path: owner.Obj().Pkg().Path(), Receiver: owner.Obj().Name(), Name: f.Name()}, true
	}
	return Member{}, false
}

// TypeMember names a named type, looking through pointers and aliases.
func TypeMember(t types.Type) (Member, bool) {
	named := namedOf(t)
	if named == nil {
		return Member{}, false
	}
	return MemberOf(named.Obj())
}

// MemberSet is an immutable set of members, built once at initialization.
type MemberSet map[Member]struct{}

// NewMemberSet builds a set from members.
func NewMemberSet(ms ...Member) MemberSet {
	set := make(MemberSet, len(ms))
	for _, m := range ms {
		set[m] = struct{}{}
	}
	return set
}

// Contains reports whether m is in the set.
func (s MemberSet) Contains(m Member) bool {
	_, ok := s[m]
	return ok
}

func namedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}
	if named, ok := t.(*types.Named); ok {
		return named.Origin()
	}
	return nil
}

func structOf(t types.Type) (*types.Struct, bool) {
	if t == nil {
		return nil, false
	}
	t = types.Unalias(t)
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}
	st, ok := t.Underlying().(*types.Struct)
	return st, ok
}

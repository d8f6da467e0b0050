package track

import (
	"context"
	"go/ast"
	"strings"
	"testing"

	"github.com/spechtlabs/lintkit/internal/testsource"
)

const cookieSrc = `
type cookie struct {
	Name   string
	Secure bool
}

func fetch() *cookie { return nil }

func created() {
	c := &cookie{Name: "created"}
	c.Secure = false
}

func fetched() {
	c := fetch()
	c.Secure = false
}

func rebound() {
	c := &cookie{Name: "rebound"}
	c = fetch()
	c.Secure = false
}

func param(c *cookie) {
	c.Secure = false
}

func declared() {
	var c = new(cookie)
	c.Secure = false
}

func ranged(cs []*cookie) {
	for _, c := range cs {
		c.Secure = false
	}
}
`

func TestBoundToCreation(t *testing.T) {
	s := testsource.Parse(t, cookieSrc)
	cookieType := Member{Path: "test", Name: "cookie"}

	tests := []struct {
		fn   string
		want bool
	}{
		{fn: "created", want: true},
		{fn: "fetched"},
		{fn: "rebound"},
		{fn: "param"},
		{fn: "declared", want: true},
		{fn: "ranged"},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			decl := testsource.Find[*ast.FuncDecl](t, s, "func "+tt.fn+"(")
			var site Site
			for cur := range decl.Preorder((*ast.SelectorExpr)(nil)) {
				site = Site{Ctx: context.Background(), Pass: s.Pass, Cursor: cur}
				break
			}
			sel := site.Node().(*ast.SelectorExpr)

			if got := site.BoundToCreation(sel.X, cookieType); got != tt.want {
				t.Errorf("BoundToCreation(%s) = %v, want %v", tt.fn, got, tt.want)
			}
		})
	}
}

func TestAssignedFieldCancelled(t *testing.T) {
	src := cookieSrc + "\nfunc long() {\n\tc := &cookie{Name: \"long\"}\n" +
		strings.Repeat("\t_ = 0\n", 2*ctxCheckInterval) +
		"\tc.Secure = true\n\t_ = c\n}\n"
	s := testsource.Parse(t, src)
	lit := testsource.Find[*ast.CompositeLit](t, s, `cookie{Name: "long"}`)

	creation := func(ctx context.Context) ObjectCreationSite {
		site, ok := buildObjectCreation(Site{Ctx: ctx, Pass: s.Pass, Cursor: lit})
		if !ok {
			t.Fatal("composite literal is not an object creation")
		}
		return site
	}

	v, ok := AssignedField(creation(context.Background()), "Secure")
	if !ok || !IsConstTrue(v) {
		t.Errorf("AssignedField() = %v, %v; want the later assignment of true", v.Expr, ok)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := AssignedField(creation(ctx), "Secure"); ok {
		t.Error("AssignedField() resolved a value after cancellation")
	}
}

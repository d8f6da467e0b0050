// Package hardcodedcreds detects potential hardcoded credentials and secrets.
//
// Hardcoded credentials are a security risk. This analyzer flags suspicious
// patterns that might be secrets.
package hardcodedcreds

import (
	"flag"
	"go/ast"
	"go/constant"
	"go/token"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect potential hardcoded credentials and secrets

Hardcoded credentials are a security vulnerability. This analyzer
detects suspicious patterns that might be secrets:

1. Variables, fields and map keys whose name suggests a secret (password,
   apiKey, secret, token) holding a constant string of at least -min-length
   bytes
2. String literals that look like API keys or tokens
3. Private key blocks
4. Connection strings with embedded credentials

Values that look like environment variable names, such as "API_TOKEN", are
not reported.

Secrets should come from:
- Environment variables
- Secret management systems (Vault, AWS Secrets Manager)
- Kubernetes Secrets`

var Descriptor = &rule.Descriptor{
	ID:               "LK1011",
	Name:             "hardcodedcreds",
	Title:            "detect potential hardcoded credentials and secrets",
	Message:          "%s; use environment variable or secret management",
	Severity:         rule.Blocker,
	Category:         rule.Security,
	EnabledByDefault: true,
	Configurable:     true,
	Doc:              Doc,
}

var minLength = 6

var Analyzer = rule.New(Descriptor, initialize, rule.WithFlags(func(fs *flag.FlagSet) {
	fs.IntVar(&minLength, "min-length", minLength, "minimum length of a constant assigned to a suspicious name")
}))

// Suspicious variable name patterns
var suspiciousNames = []string{
	"password", "passwd", "pwd",
	"secret", "apikey", "api_key",
	"token", "auth", "credential",
	"private_key", "privatekey",
	"access_key", "accesskey",
	"client_secret", "clientsecret",
}

// Patterns that look like secrets
var secretPatterns = []*regexp.Regexp{
	// AWS Access Key ID
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Generic API key pattern (32+ hex chars)
	regexp.MustCompile(`[0-9a-fA-F]{32,}`),
	// JWT tokens
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`),
	// GitHub tokens
	regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`),
	regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{22,}`),
	// Generic bearer token
	regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_-]{20,}`),
	// Private key header
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE\s+KEY-----`),
	// user:password@ in a URL or DSN
	regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^/:@\s]+:[^/@\s]+@`),
}

var envName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

func initialize(c *rule.Context) {
	c.RegisterNodeAction(func(cur inspector.Cursor) {
		switch node := cur.Node().(type) {
		case *ast.ValueSpec:
			checkValueSpec(c, node)
		case *ast.AssignStmt:
			checkAssignment(c, node)
		case *ast.KeyValueExpr:
			checkKeyValue(c, node)
		case *ast.BasicLit:
			checkLiteral(c, cur, node)
		}
	}, (*ast.ValueSpec)(nil), (*ast.AssignStmt)(nil), (*ast.KeyValueExpr)(nil), (*ast.BasicLit)(nil))
}

func checkValueSpec(c *rule.Context, spec *ast.ValueSpec) {
	if len(spec.Names) != len(spec.Values) {
		return
	}
	for i, name := range spec.Names {
		if isSuspiciousName(name.Name) && credentialValue(c, spec.Values[i]) {
			c.Report(name, "potential hardcoded credential in "+strconv.Quote(name.Name))
		}
	}
}

func checkAssignment(c *rule.Context, assign *ast.AssignStmt) {
	if len(assign.Lhs) != len(assign.Rhs) {
		return
	}
	for i, lhs := range assign.Lhs {
		var name string
		switch lhs := lhs.(type) {
		case *ast.Ident:
			name = lhs.Name
		case *ast.SelectorExpr:
			name = lhs.Sel.Name
		default:
			continue
		}
		if isSuspiciousName(name) && credentialValue(c, assign.Rhs[i]) {
			c.Report(lhs, "potential hardcoded credential in "+strconv.Quote(name))
		}
	}
}

func checkKeyValue(c *rule.Context, kv *ast.KeyValueExpr) {
	var name string
	switch key := kv.Key.(type) {
	case *ast.Ident:
		// struct field
		name = key.Name
	default:
		s, ok := constString(c, kv.Key)
		if !ok {
			return
		}
		name = s
	}

	if isSuspiciousName(name) && credentialValue(c, kv.Value) {
		c.Report(kv, "potential hardcoded credential in field "+strconv.Quote(name))
	}
}

func checkLiteral(c *rule.Context, cur inspector.Cursor, lit *ast.BasicLit) {
	if lit.Kind != token.STRING {
		return
	}
	switch kind, _ := cur.ParentEdge(); kind {
	case edge.ImportSpec_Path, edge.Field_Tag:
		return
	}

	value, ok := constString(c, lit)
	if !ok {
		return
	}
	for _, pattern := range secretPatterns {
		if pattern.MatchString(value) {
			c.Report(lit, "string literal looks like a secret or credential")
			return
		}
	}
}

// credentialValue reports whether e is a constant string long enough to be
// a secret that is not just the name of one.
func credentialValue(c *rule.Context, e ast.Expr) bool {
	s, ok := constString(c, e)
	return ok && len(s) >= minLength && !envName.MatchString(s)
}

func constString(c *rule.Context, e ast.Expr) (string, bool) {
	v := track.Value{Expr: e, Info: c.Info()}.Const()
	if v == nil || v.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(v), true
}

func isSuspiciousName(name string) bool {
	lower := strings.ToLower(name)
	for _, suspicious := range suspiciousNames {
		if strings.Contains(lower, suspicious) {
			return true
		}
	}
	return false
}

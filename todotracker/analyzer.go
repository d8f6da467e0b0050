// Package todotracker ensures TODO/FIXME comments have owners and context.
//
// Orphaned TODOs tend to stay forever. Requiring ownership and context
// helps ensure technical debt is tracked and eventually addressed.
package todotracker

import (
	"fmt"
	"go/ast"
	"regexp"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `ensure TODO/FIXME comments have owners and context

Orphaned TODOs without owners tend to never get done. This analyzer
enforces that TODO/FIXME comments include:
1. An owner (username, email, or team)
2. Context about what needs to be done

Good:
    // TODO(username): Implement retry logic for transient failures
    // FIXME(@team-platform): This breaks when input exceeds 1MB
    // TODO(jira:PROJ-123): Add caching layer

Bad:
    // TODO: fix this
    // FIXME
    // TODO - make this better`

var Descriptor = &rule.Descriptor{
	ID:               "LK1016",
	Name:             "todotracker",
	Title:            "ensure TODO/FIXME comments have owners and context",
	Message:          "%s",
	Severity:         rule.Info,
	Category:         rule.Maintainability,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

// wellFormed matches TODO(owner): description
var wellFormed = regexp.MustCompile(`(?i)\b(TODO|FIXME)\s*\([^)]+\)\s*:\s*\S+`)

var marker = regexp.MustCompile(`(?i)\b(TODO|FIXME)\b`)

func initialize(c *rule.Context) {
	c.RegisterNodeAction(func(cur inspector.Cursor) {
		file, ok := cur.Node().(*ast.File)
		if !ok {
			return
		}
		for _, cg := range file.Comments {
			for _, comment := range cg.List {
				if msg := check(comment.Text); msg != "" {
					c.Report(comment, msg)
				}
			}
		}
	}, (*ast.File)(nil))
}

// check returns what is wrong with a TODO comment, or "" if the comment is
// fine or no TODO at all.
func check(text string) string {
	m := marker.FindStringIndex(text)
	if m == nil || wellFormed.MatchString(text) {
		return ""
	}
	kind := strings.ToUpper(text[m[0]:m[1]])
	rest := text[m[1]:]

	switch {
	case !strings.HasPrefix(strings.TrimSpace(rest), "("):
		return fmt.Sprintf("%s without owner; use %s(username): description", kind, kind)
	case !strings.Contains(rest, ":"):
		return fmt.Sprintf("%s without description; use %s(owner): what needs to be done", kind, kind)
	default:
		return fmt.Sprintf("%s appears malformed; use format: %s(owner): description", kind, kind)
	}
}

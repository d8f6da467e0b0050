// Package nolint parses suppression comments.
//
// Supported comment formats:
//
//	//nolint:lintkit                 - suppress every lintkit rule on this line
//	//nolint:cookiesecure            - suppress one rule by analyzer name
//	//nolint:LK1002,LK1003           - suppress rules by ID
//	// nolint:all                    - space after // is allowed
//
// A directive applies to its own line and to the line that follows it. A
// directive in the comment group directly above the package clause applies
// to the whole file.
package nolint

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// Suite is the directive name that suppresses every rule of this module.
const Suite = "lintkit"

var nolintRegex = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9_,-]+)`)

// Directive is one parsed nolint comment.
type Directive struct {
	Line  int
	Names []string
}

// FileDirectives holds the directives of one file.
type FileDirectives struct {
	byLine map[int]*Directive
	file   *Directive
}

// ParseFile extracts the nolint directives of file.
func ParseFile(file *ast.File, fset *token.FileSet) *FileDirectives {
	fd := &FileDirectives{byLine: make(map[int]*Directive)}

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			d := parseComment(c.Text)
			if d == nil {
				continue
			}
			d.Line = fset.Position(c.Pos()).Line
			if prev := fd.byLine[d.Line]; prev != nil {
				prev.Names = append(prev.Names, d.Names...)
				continue
			}
			fd.byLine[d.Line] = d
		}
	}

	if file.Doc != nil {
		for _, c := range file.Doc.List {
			if d := parseComment(c.Text); d != nil {
				fd.file = d
			}
		}
	}

	return fd
}

func parseComment(text string) *Directive {
	matches := nolintRegex.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	var names []string
	for _, name := range strings.Split(matches[1], ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return &Directive{Names: names}
}

// IsSuppressed reports whether a diagnostic on line is silenced for any of
// keys (typically the analyzer name and the rule ID).
func (fd *FileDirectives) IsSuppressed(line int, keys ...string) bool {
	if fd == nil {
		return false
	}
	if fd.file.matches(keys) {
		return true
	}
	return fd.byLine[line].matches(keys) || fd.byLine[line-1].matches(keys)
}

// SuppressesFile reports whether the file-level directive silences keys.
func (fd *FileDirectives) SuppressesFile(keys ...string) bool {
	return fd != nil && fd.file.matches(keys)
}

func (d *Directive) matches(keys []string) bool {
	if d == nil {
		return false
	}
	for _, name := range d.Names {
		if name == Suite || name == "all" {
			return true
		}
		for _, k := range keys {
			if strings.EqualFold(name, k) {
				return true
			}
		}
	}
	return false
}

// Package report forwards rule diagnostics to the analysis pass.
//
// The Sink is the single place where policy is applied to a finished
// diagnostic: nolint directives, exclude globs, generated files and
// duplicates are all filtered here.
package report

import (
	"go/ast"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/internal/nolint"
)

// Options configures a Sink.
type Options struct {
	// Keys are matched against nolint directives, usually the analyzer
	// name and the rule ID.
	Keys []string
	// Exclude holds doublestar patterns for files that never receive
	// diagnostics.
	Exclude []string
	// Generated keeps diagnostics in generated files.
	Generated bool
}

type dedupKey struct {
	pos, end token.Pos
	msg      string
}

// Sink filters and forwards diagnostics for one analysis pass.
// It is not safe for concurrent use.
type Sink struct {
	pass       *analysis.Pass
	opts       Options
	directives map[string]*nolint.FileDirectives
	skipped    map[string]bool
	seen       map[dedupKey]struct{}
	reported   int
}

// NewSink prepares a sink for pass, parsing nolint directives of every file.
func NewSink(pass *analysis.Pass, opts Options) *Sink {
	s := &Sink{
		pass:       pass,
		opts:       opts,
		directives: make(map[string]*nolint.FileDirectives, len(pass.Files)),
		skipped:    make(map[string]bool, len(pass.Files)),
		seen:       make(map[dedupKey]struct{}),
	}

	for _, file := range pass.Files {
		name := pass.Fset.Position(file.Pos()).Filename
		fd := nolint.ParseFile(file, pass.Fset)
		s.directives[name] = fd
		s.skipped[name] = s.skipFile(file, name, fd)
	}

	return s
}

func (s *Sink) skipFile(file *ast.File, name string, fd *nolint.FileDirectives) bool {
	switch {
	case !s.opts.Generated && ast.IsGenerated(file):
		glog.V(2).Infof("%s: skipping generated file", name)
		return true
	case fd.SuppressesFile(s.opts.Keys...):
		return true
	case Excluded(name, s.opts.Exclude):
		glog.V(2).Infof("%s: excluded by pattern", name)
		return true
	}
	return false
}

// Skip reports whether no diagnostic can ever be reported in file.
// Callers use it to avoid walking such files at all.
func (s *Sink) Skip(file *ast.File) bool {
	return s.skipped[s.pass.Fset.Position(file.Pos()).Filename]
}

// Report forwards d unless a filter rejects it. It returns whether the
// diagnostic was forwarded.
func (s *Sink) Report(d analysis.Diagnostic) bool {
	position := s.pass.Fset.Position(d.Pos)

	if s.skipped[position.Filename] {
		return false
	}
	if fd := s.directives[position.Filename]; fd.IsSuppressed(position.Line, s.opts.Keys...) {
		return false
	}

	k := dedupKey{pos: d.Pos, end: d.End, msg: d.Message}
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = struct{}{}

	s.pass.Report(d)
	s.reported++
	return true
}

// Count is the number of diagnostics forwarded so far.
func (s *Sink) Count() int { return s.reported }

// Excluded matches filename against doublestar patterns. Patterns are
// tried against the slash-separated path without its leading slash and
// against the base name.
func Excluded(filename string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	p := strings.TrimPrefix(filepath.ToSlash(filename), "/")
	base := filepath.Base(filename)
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "/")
		if ok, err := doublestar.Match(pattern, p); err != nil {
			glog.Warningf("invalid exclude pattern %q: %v", pattern, err)
			continue
		} else if ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

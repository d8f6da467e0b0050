package rule

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"runtime/trace"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ErrResultMissing is returned when a required analyzer result is unavailable.
var ErrResultMissing = errors.New("analyzer result missing")

// Option configures an analyzer built by New.
type Option func(*options)

type options struct {
	flags []func(fs *flag.FlagSet)
}

// WithFlags lets a rule register its parameters. The flag set is the
// analyzer's, so parameters show up as -<name>.<flag> on the command line and
// can be set from the configuration file.
func WithFlags(register func(fs *flag.FlagSet)) Option {
	return func(o *options) { o.flags = append(o.flags, register) }
}

// minimum is the severity below which rules stay silent. It is set from the
// command line or configuration before any pass runs.
var minimum Severity

// SetMinSeverity sets the process-wide severity threshold. Rules whose
// effective severity is below it report nothing.
func SetMinSeverity(s Severity) { minimum = s }

// MinSeverityFlag exposes the threshold for registration on a flag set.
func MinSeverityFlag() flag.Value { return &minimum }

type settings struct {
	severity       Severity
	generated      bool
	exclude        patternList
	internalErrors bool
}

type runner struct {
	descriptor *Descriptor
	initialize func(*Context)
	settings   settings
}

// New registers d and builds the analyzer that runs initialize once per
// package.
func New(d *Descriptor, initialize func(*Context), opts ...Option) *analysis.Analyzer {
	MustRegister(d)

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		descriptor: d,
		initialize: initialize,
		settings:   settings{severity: d.Severity},
	}

	a := &analysis.Analyzer{
		Name:     d.Name,
		Doc:      doc(d),
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}

	r.registerFlags(&a.Flags)
	for _, register := range o.flags {
		register(&a.Flags)
	}

	return a
}

func doc(d *Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", d.Title, d.ID)
	if d.Doc != "" {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(d.Doc))
	}
	return b.String()
}

func (r *runner) registerFlags(fs *flag.FlagSet) {
	fs.Var(&r.settings.severity, "severity", "severity of reported diagnostics (info, minor, major, critical, blocker)")
	fs.BoolVar(&r.settings.generated, "generated", false, "also report in generated files")
	fs.Var(&r.settings.exclude, "exclude", "comma separated doublestar patterns of files to skip")
	fs.BoolVar(&r.settings.internalErrors, "internal-errors", false, "report internal faults as diagnostics")
}

func (r *runner) run(pass *analysis.Pass) (result any, err error) {
	in, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("%s: %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if !r.settings.severity.AtLeast(minimum) {
		glog.V(1).Infof("%s: severity %s below %s, skipped", r.descriptor.Name, r.settings.severity, minimum)
		return nil, nil
	}

	// go/analysis passes carry no cancellation, so this context is never
	// cancelled here; the checks on it serve callers that build sites with
	// their own context.
	ctx, task := trace.NewTask(context.Background(), r.descriptor.Name)
	defer task.End()

	c := newContext(ctx, pass, r.descriptor, r.settings)

	defer func() {
		if p := recover(); p != nil {
			c.fault(nil, p)
			result, err = nil, nil
		}
	}()

	r.initialize(c)
	c.walk(in)
	c.finish()

	return nil, nil
}

type patternList []string

func (p *patternList) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

func (p *patternList) Set(v string) error {
	*p = (*p)[:0]
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*p = append(*p, s)
		}
	}
	return nil
}

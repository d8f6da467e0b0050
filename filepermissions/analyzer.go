// Package filepermissions reports files and directories created or changed
// with permission bits that grant access to other users.
package filepermissions

import (
	"flag"
	"go/constant"
	"io/fs"

	"fortio.org/safecast"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect world-accessible file permissions

Reports calls to os.WriteFile, os.OpenFile, os.Mkdir, os.MkdirAll,
os.Chmod and (*os.File).Chmod whose constant permission argument has any
bit of -mask set in the "other" class. The default mask 0o002 reports
world-writable modes; 0o007 also reports world-readable ones.

    os.WriteFile(path, data, 0o666) // reported
    os.WriteFile(path, data, 0o600) // fine

The permission argument is found by parameter name, perm or mode, so the
check works for every function that follows the os conventions.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1007",
	Name:             "filepermissions",
	Title:            "detect world-accessible file permissions",
	Message:          "%s uses permission %#o, which is accessible to other users",
	Severity:         rule.Major,
	Category:         rule.Security,
	EnabledByDefault: true,
	Configurable:     true,
	Doc:              Doc,
}

var mask = 0o002

var Analyzer = rule.New(Descriptor, initialize, rule.WithFlags(func(fs *flag.FlagSet) {
	fs.IntVar(&mask, "mask", mask, "permission bits that must not be granted to other users")
}))

var calls = []track.Member{
	track.MustParseMember("os.WriteFile"),
	track.MustParseMember("os.OpenFile"),
	track.MustParseMember("os.Mkdir"),
	track.MustParseMember("os.MkdirAll"),
	track.MustParseMember("os.Chmod"),
	track.MustParseMember("(*os.File).Chmod"),
}

// permParams are the parameter names the os package uses for modes.
var permParams = []string{"perm", "mode"}

func fileMode(n int64) (fs.FileMode, bool) {
	m, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, false
	}
	return fs.FileMode(m), true
}

func initialize(c *rule.Context) {
	others := fs.FileMode(mask) & 0o007
	permissive := track.ConstIntMatches(func(n int64) bool {
		m, ok := fileMode(n)
		return ok && m.Perm()&others != 0
	})

	invocations := track.NewInvocationTracker()
	in := invocations.Input(c)
	in.Args = func(s track.InvocationSite) []any {
		m, _ := track.MemberOf(s.Func)
		return []any{m, permOf(s)}
	}

	byName := make([]track.Predicate[track.InvocationSite], len(permParams))
	for i, name := range permParams {
		byName[i] = invocations.ArgumentNamedIs(name, permissive)
	}

	invocations.Track(in,
		invocations.MatchMethod(calls...),
		track.Any(byName...))
}

func permOf(s track.InvocationSite) fs.FileMode {
	for _, name := range permParams {
		args := s.Args.Named(name)
		if len(args) == 0 {
			continue
		}
		c := s.Value(args[0]).Const()
		if c == nil {
			continue
		}
		if n, ok := constant.Int64Val(constant.ToInt(c)); ok {
			m, _ := fileMode(n)
			return m.Perm()
		}
	}
	return 0
}

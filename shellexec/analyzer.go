// Package shellexec reports commands that run a shell on a string built at
// run time.
package shellexec

import (
	"path"
	"strings"

	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect shell command injection through os/exec

Passing a dynamic string to a shell lets anyone who controls part of that
string run arbitrary commands:

    exec.Command("sh", "-c", "tar xf "+name)         // reported
    exec.CommandContext(ctx, "bash", "-c", script)    // reported

Run the program directly and pass each argument separately:

    exec.Command("tar", "xf", name)

Constant scripts, such as exec.Command("sh", "-c", "make all"), are not
reported.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1008",
	Name:             "shellexec",
	Title:            "detect shell command injection through os/exec",
	Message:          "%s runs a command string built at run time; pass arguments to the program directly",
	Severity:         rule.Critical,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

var commands = []track.Member{
	track.MustParseMember("os/exec.Command"),
	track.MustParseMember("os/exec.CommandContext"),
}

var shells = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "dash": true, "ksh": true, "ash": true,
	"cmd": true, "cmd.exe": true, "powershell": true, "powershell.exe": true, "pwsh": true,
}

var commandFlags = map[string]bool{"-c": true, "/c": true, "-command": true}

func isShell(name string) bool {
	return shells[strings.ToLower(path.Base(strings.ReplaceAll(name, `\`, "/")))]
}

func isCommandFlag(f string) bool { return commandFlags[strings.ToLower(f)] }

func initialize(c *rule.Context) {
	calls := track.NewInvocationTracker()
	in := calls.Input(c)
	in.Args = func(s track.InvocationSite) []any {
		shell := ""
		if names := s.Args.Named("name"); len(names) > 0 {
			shell = constString(s.Value(names[0]))
		}
		return []any{shell}
	}

	calls.Track(in,
		calls.MatchMethod(commands...),
		calls.ArgumentNamedIs("name", track.ConstStringMatches(isShell)),
		calls.ArgumentNamedAtIs("arg", 0, track.ConstStringMatches(isCommandFlag)),
		calls.ArgumentNamedAtIs("arg", 1, track.IsNotConstant))
}

func constString(v track.Value) (s string) {
	track.ConstStringMatches(func(c string) bool { s = c; return true })(v)
	return s
}

// Package version provides version information for lintkit.
package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

// Build information, overridden with
// -ldflags "-X github.com/spechtlabs/lintkit/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// Info is the full version line printed by "lintkit version".
func Info() string {
	return fmt.Sprintf("lintkit %s (commit: %s, built: %s, %s)",
		Version, Commit, Date, GoVersion)
}

// Short is the bare version, used as the cobra version of lintkit-rules.
func Short() string {
	return Version
}

// Banner is the one-line summary printed after Info. Color is dropped when
// stdout is not a terminal or NO_COLOR is set.
func Banner(rules int) string {
	return fmt.Sprintf("%s - %s rules for safer Go services",
		color.New(color.Bold).Sprint("lintkit"),
		color.CyanString("%d", rules))
}

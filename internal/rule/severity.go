package rule

import (
	"fmt"
	"strings"
)

// Severity ranks how serious a diagnostic is. The zero value is Info.
type Severity uint8

const (
	Info Severity = iota
	Minor
	Major
	Critical
	Blocker
)

var severityNames = [...]string{
	Info:     "info",
	Minor:    "minor",
	Major:    "major",
	Critical: "critical",
	Blocker:  "blocker",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Info, fmt.Errorf("unknown severity %q (want one of %s)", name, strings.Join(severityNames[:], ", "))
}

// Set implements flag.Value.
func (s *Severity) Set(v string) error {
	p, err := ParseSeverity(v)
	if err != nil {
		return err
	}
	*s = p
	return nil
}

// AtLeast reports whether s is as severe as min.
func (s Severity) AtLeast(minimum Severity) bool {
	return s >= minimum
}

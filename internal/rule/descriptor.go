package rule

import "fmt"

// Category groups rules for selection on the command line and in configuration.
type Category string

const (
	Security        Category = "security"
	Reliability     Category = "reliability"
	Maintainability Category = "maintainability"
)

// Descriptor is the immutable identity of a rule.
//
// A rule package creates exactly one Descriptor at initialization and hands
// it to New. The Message is a fmt template; the arguments are supplied at
// report time.
type Descriptor struct {
	// ID is the stable rule code, e.g. "LK1002".
	ID string
	// Name is the analyzer name. It must be a valid Go identifier.
	Name string
	// Title is a one-line summary used by the rule catalogue.
	Title string
	// Message is the diagnostic message template.
	Message  string
	Severity Severity
	Category Category
	// EnabledByDefault rules run unless configuration disables them.
	EnabledByDefault bool
	// Configurable rules expose parameters as analyzer flags.
	Configurable bool
	// Doc is the long description shown by "lintkit-rules describe".
	Doc string
}

// Format renders the message template with args, prefixed with the rule ID
// and the severity it is reported with: "[LK1014 major] ...".
func (d *Descriptor) Format(sev Severity, args ...any) string {
	msg := d.Message
	if len(args) > 0 {
		msg = fmt.Sprintf(d.Message, args...)
	}
	return prefix(d.ID, sev) + msg
}

func prefix(id string, sev Severity) string {
	return "[" + id + " " + sev.String() + "] "
}

func (d *Descriptor) String() string {
	return d.ID + " " + d.Name
}

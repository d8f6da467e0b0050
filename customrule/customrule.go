// Package customrule builds analyzers for the banned-call rules declared in
// the configuration file.
package customrule

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/lintkit/internal/config"
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

// Build returns one analyzer per custom rule. Every rule is checked before
// any is registered, so a bad entry leaves the registry untouched.
func Build(rules []config.CustomRule) ([]*analysis.Analyzer, error) {
	descriptors := make([]*rule.Descriptor, len(rules))
	members := make([][]track.Member, len(rules))

	var errs []error
	for i, cr := range rules {
		d, ms, err := describe(cr)
		if err != nil {
			errs = append(errs, fmt.Errorf("custom rule %q: %w", cr.ID, err))
			continue
		}
		descriptors[i], members[i] = d, ms
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	analyzers := make([]*analysis.Analyzer, 0, len(rules))
	for i, d := range descriptors {
		if err := rule.Register(d); err != nil {
			return analyzers, fmt.Errorf("custom rule %q: %w", d.ID, err)
		}
		analyzers = append(analyzers, rule.New(d, banned(d, members[i])))
	}
	return analyzers, nil
}

func describe(cr config.CustomRule) (*rule.Descriptor, []track.Member, error) {
	if cr.ID == "" || !token.IsIdentifier(cr.Name) {
		return nil, nil, fmt.Errorf("id and an identifier name are required, got name %q", cr.Name)
	}
	if len(cr.Calls) == 0 {
		return nil, nil, errors.New("no calls listed")
	}

	severity := rule.Major
	if cr.Severity != "" {
		s, err := rule.ParseSeverity(cr.Severity)
		if err != nil {
			return nil, nil, err
		}
		severity = s
	}

	members := make([]track.Member, 0, len(cr.Calls))
	for _, call := range cr.Calls {
		m, err := track.ParseMember(call)
		if err != nil {
			return nil, nil, err
		}
		members = append(members, m)
	}

	message := cr.Message
	if message == "" {
		message = defaultMessage
	}

	return &rule.Descriptor{
		ID:               strings.ToUpper(cr.ID),
		Name:             cr.Name,
		Title:            "ban calls of " + strings.Join(cr.Calls, ", "),
		Message:          message,
		Severity:         severity,
		Category:         rule.Maintainability,
		EnabledByDefault: true,
		Doc:              cr.Doc,
	}, members, nil
}

const defaultMessage = "call of %s is not allowed"

// banned reports calls of members. A configured message is shown verbatim;
// the default one names the callee.
func banned(d *rule.Descriptor, members []track.Member) func(*rule.Context) {
	return func(c *rule.Context) {
		calls := track.NewInvocationTracker()
		in := calls.Input(c)
		if d.Message == defaultMessage {
			in.Args = func(s track.InvocationSite) []any {
				m, _ := track.MemberOf(s.Func)
				return []any{m}
			}
		}
		calls.Track(in, calls.MatchMethod(members...))
	}
}

// Package cookiehttponly reports cookies that are not marked HttpOnly.
package cookiehttponly

import (
	"github.com/spechtlabs/lintkit/internal/cookieflag"
	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `require the HttpOnly flag on cookies

A cookie without the HttpOnly flag is readable from JavaScript through document.cookie, so a single XSS bug leaks it.

Reported:
    http.SetCookie(w, &http.Cookie{Name: "session", Value: id})
    c := &http.Cookie{Name: "session", HttpOnly: false}
    func weaken(c *http.Cookie) { c.HttpOnly = false }
    c, _ := r.Cookie("session"); c.HttpOnly = false

Not reported:
    http.SetCookie(w, &http.Cookie{Name: "session", HttpOnly: true})
    c := &http.Cookie{Name: "session"}
    c.HttpOnly = true

A value that is not a constant, such as HttpOnly: cfg.HttpOnly, is trusted.
An assignment inside an if or a loop does not count, because it may not
happen.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1003",
	Name:             "cookiehttponly",
	Title:            "require the HttpOnly flag on cookies",
	Message:          "cookie %s without the HttpOnly flag; set HttpOnly to true",
	Severity:         rule.Major,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

func initialize(c *rule.Context) {
	cookieflag.Track(c, "HttpOnly")
}

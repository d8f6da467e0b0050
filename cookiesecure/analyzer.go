// Package cookiesecure reports cookies that are not marked Secure.
package cookiesecure

import (
	"github.com/spechtlabs/lintkit/internal/cookieflag"
	"github.com/spechtlabs/lintkit/internal/rule"
)

const Doc = `require the Secure flag on cookies

A cookie without the Secure flag is sent over plain HTTP connections, where it can be read and modified by anyone on the network.

Reported:
    http.SetCookie(w, &http.Cookie{Name: "session", Value: id})
    c := &http.Cookie{Name: "session", Secure: false}
    func weaken(c *http.Cookie) { c.Secure = false }
    c, _ := r.Cookie("session"); c.Secure = false

Not reported:
    http.SetCookie(w, &http.Cookie{Name: "session", Secure: true})
    c := &http.Cookie{Name: "session"}
    c.Secure = true

A value that is not a constant, such as Secure: cfg.Secure, is trusted.
An assignment inside an if or a loop does not count, because it may not
happen.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1002",
	Name:             "cookiesecure",
	Title:            "require the Secure flag on cookies",
	Message:          "cookie %s without the Secure flag; set Secure to true",
	Severity:         rule.Major,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

func initialize(c *rule.Context) {
	cookieflag.Track(c, "Secure")
}

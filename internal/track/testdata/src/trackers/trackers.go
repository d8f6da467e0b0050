package trackers

import (
	"crypto/tls"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

func repeat(s string, n int) {
	_ = strings.Repeat(s, 5) // want `repeat called with a large count`
	_ = strings.Repeat(s, 2)
	_ = strings.Repeat(s, n)
	_ = strings.Repeat(s, 2+2) // want `repeat called with a large count`
}

func upper(s string) {
	_ = strings.ToUpper("constant")
	_ = strings.ToUpper(s) // want `upper of a variable`
}

func lower(s string) string {
	return strings.ToLower(s)
}

func loops(lines []string) {
	_ = strings.Fields("a b")
	for _, l := range lines {
		_ = strings.Fields(l) // want `fields in loop`
		func() {
			_ = strings.Fields(l)
		}()
	}
	for i := 0; i < len(lines); i++ {
		_ = strings.Fields(lines[i]) // want `fields in loop`
	}
}

func joins(rest []string) {
	_ = filepath.Join("a", ",")    // want `joined with a comma`
	_ = path.Join("a", "b", ",")
	_ = path.Join("a", ",", "b")   // want `joined with a comma`
	_ = filepath.Join("a")
	_ = filepath.Join(rest...)
}

func cookies(w http.ResponseWriter, secure bool, flag bool) {
	http.SetCookie(w, &http.Cookie{Name: "a"})                // want `cookie without Secure`
	http.SetCookie(w, &http.Cookie{Name: "b", Secure: true})
	http.SetCookie(w, &http.Cookie{Name: "c", Secure: false}) // want `cookie without Secure`
	http.SetCookie(w, &http.Cookie{Name: "d", Secure: flag})  // want `cookie without Secure`
	http.SetCookie(w, new(http.Cookie))                        // want `cookie without Secure`

	c := &http.Cookie{Name: "e"}
	c.Secure = true
	http.SetCookie(w, c)

	d := &http.Cookie{Name: "f"} // want `cookie without Secure`
	if secure {
		d.Secure = true
	}
	http.SetCookie(w, d)

	e := http.Cookie{Name: "g", Secure: true} // want `cookie without Secure`
	e.Secure = false
	http.SetCookie(w, &e)

	var f = &http.Cookie{Name: "h"}
	f.Path = "/"
	f.Secure = true
	http.SetCookie(w, f)

	g := &http.Cookie{Name: "i", Secure: true} // want `cookie without Secure`
	g.Secure = !g.Secure
	http.SetCookie(w, g)
}

func tlsConfig() *tls.Config {
	cfg := &tls.Config{}
	cfg.InsecureSkipVerify = true // want `InsecureSkipVerify set to true`
	cfg.InsecureSkipVerify = false
	if cfg.InsecureSkipVerify {
		return nil
	}
	return cfg
}

func headers(h http.Header, policy string) {
	h["Content-Security-Policy"] = []string{"default-src *"} // want `wildcard policy`
	h["Content-Security-Policy"] = []string{"default-src 'self'"}
	h["content-security-policy"] = []string{"img-src *"} // want `wildcard policy`
	h["X-Other"] = []string{"*"}
	h["Content-Security-Policy"] = []string{policy}
	_ = h["Content-Security-Policy"]
}

package a

import "net/http"

const policy = "default-src 'self'"

func handler(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h["Content-Security-Policy"] = []string{"default-src *"} // want `Content-Security-Policy "default-src \*" allows any source`
	h["Content-Security-Policy"] = []string{policy}
	h["X-Frame-Options"] = []string{"*"}

	h.Set("Content-Security-Policy", "default-src *")                    // want `\[LK1005 major\] Content-Security-Policy "default-src \*" allows any source`
	h.Set("content-security-policy", "script-src 'self' 'unsafe-eval'") // want `allows eval`
	w.Header().Add("Content-Security-Policy", policy+"; style-src 'unsafe-inline'") // want `allows inline scripts`
	h.Set("Content-Security-Policy", policy)
	h.Set("Content-Security-Policy", "script-src https://*.cdn.example") // want `Content-Security-Policy "script-src https://\*.cdn.example" allows wildcard hosts`
	h.Set("Content-Security-Policy", "script-src https://cdn.example")
	h.Set("Content-Security-Policy", r.URL.Query().Get("csp"))

	if v := h["Content-Security-Policy"]; len(v) > 0 {
		_ = v[0]
	}
}

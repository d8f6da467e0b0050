package a

import "net/http"

func set(w http.ResponseWriter, enabled bool) {
	http.SetCookie(w, &http.Cookie{Name: "a"}) // want `cookie is created without the HttpOnly flag`
	http.SetCookie(w, &http.Cookie{Name: "b", HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: "c", HttpOnly: enabled})
	http.SetCookie(w, &http.Cookie{Name: "d", HttpOnly: false}) // want `cookie is created without the HttpOnly flag; set HttpOnly to true`
	http.SetCookie(w, new(http.Cookie))                        // want `cookie is created`

	c := &http.Cookie{Name: "e"}
	c.HttpOnly = true
	http.SetCookie(w, c)

	d := &http.Cookie{Name: "f"} // want `cookie is created`
	if enabled {
		d.HttpOnly = true
	}
	http.SetCookie(w, d)

	e := http.Cookie{Name: "g", HttpOnly: true} // want `cookie is created`
	e.HttpOnly = false
	http.SetCookie(w, &e)
}

func weaken(c *http.Cookie) {
	c.HttpOnly = false // want `cookie is modified without the HttpOnly flag`
	c.HttpOnly = true
}

func copyCookie(c http.Cookie) http.Cookie {
	return http.Cookie{Name: c.Name, Value: c.Value, HttpOnly: c.HttpOnly}
}

func fromRequest(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session")
	if err != nil {
		return
	}
	c.HttpOnly = false // want `cookie is modified without the HttpOnly flag`
	http.SetCookie(w, c)
}

func load() *http.Cookie {
	return &http.Cookie{Name: "l", HttpOnly: true}
}

func reload(w http.ResponseWriter) {
	c := load()
	c.HttpOnly = false // want `cookie is modified`
	http.SetCookie(w, c)
}

func rebind(w http.ResponseWriter) {
	c := &http.Cookie{Name: "r", HttpOnly: true}
	c = load()
	c.HttpOnly = false // want `cookie is modified`
	http.SetCookie(w, c)
}

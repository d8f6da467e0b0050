package a

import "net/http"

func set(w http.ResponseWriter, enabled bool) {
	http.SetCookie(w, &http.Cookie{Name: "a"}) // want `cookie is created without the Secure flag`
	http.SetCookie(w, &http.Cookie{Name: "b", Secure: true})
	http.SetCookie(w, &http.Cookie{Name: "c", Secure: enabled})
	http.SetCookie(w, &http.Cookie{Name: "d", Secure: false}) // want `cookie is created without the Secure flag; set Secure to true`
	http.SetCookie(w, new(http.Cookie))                        // want `cookie is created`

	c := &http.Cookie{Name: "e"}
	c.Secure = true
	http.SetCookie(w, c)

	d := &http.Cookie{Name: "f"} // want `cookie is created`
	if enabled {
		d.Secure = true
	}
	http.SetCookie(w, d)

	e := http.Cookie{Name: "g", Secure: true} // want `cookie is created`
	e.Secure = false
	http.SetCookie(w, &e)
}

func weaken(c *http.Cookie) {
	c.Secure = false // want `cookie is modified without the Secure flag`
	c.Secure = true
}

func copyCookie(c http.Cookie) http.Cookie {
	return http.Cookie{Name: c.Name, Value: c.Value, Secure: c.Secure}
}

func fromRequest(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session")
	if err != nil {
		return
	}
	c.Secure = false // want `cookie is modified without the Secure flag`
	http.SetCookie(w, c)
}

func load() *http.Cookie {
	return &http.Cookie{Name: "l", Secure: true}
}

func reload(w http.ResponseWriter) {
	c := load()
	c.Secure = false // want `cookie is modified`
	http.SetCookie(w, c)
}

func rebind(w http.ResponseWriter) {
	c := &http.Cookie{Name: "r", Secure: true}
	c = load()
	c.Secure = false // want `cookie is modified`
	http.SetCookie(w, c)
}

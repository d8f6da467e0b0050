package a

import "net/http"

var allowed = map[string]bool{"https://example.com": true}

func cors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*") // want `\[LK1006 major\] Access-Control-Allow-Origin "\*" allows requests from any origin`
	w.Header().Add("access-control-allow-origin", "null") // want `"null" allows requests`
	w.Header()["Access-Control-Allow-Origin"] = []string{"https://example.com", "*"} // want `"\*" allows requests`

	if origin := r.Header.Get("Origin"); allowed[origin] {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	}
	w.Header().Set("Access-Control-Allow-Methods", "*")
	w.Header().Set("Access-Control-Allow-Origin", "https://example.com")
}

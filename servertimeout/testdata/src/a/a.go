package a

import (
	"net"
	"net/http"
	"time"
)

func serve(mux *http.ServeMux, l net.Listener, readTimeout time.Duration) error {
	bare := &http.Server{Addr: ":8080", Handler: mux} // want `\[LK1010 major\] http.Server has no read timeout; set ReadHeaderTimeout on an http.Server`
	header := &http.Server{Addr: ":8081", ReadHeaderTimeout: 5 * time.Second}
	read := &http.Server{Addr: ":8082", ReadTimeout: readTimeout}
	zero := &http.Server{ReadTimeout: 0} // want `http.Server has no read timeout`

	later := &http.Server{Addr: ":8083"}
	later.ReadHeaderTimeout = time.Second

	for _, s := range []*http.Server{bare, header, read, zero, later} {
		go s.ListenAndServe()
	}

	go http.Serve(l, mux)                    // want `http.Serve serves without timeouts`
	return http.ListenAndServe(":9090", mux) // want `http.ListenAndServe serves without timeouts`
}

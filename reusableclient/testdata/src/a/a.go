package a

import (
	"net/http"
	"time"
)

type Service struct {
	client *http.Client
}

func NewService() *Service {
	return &Service{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Service) handle(w http.ResponseWriter, r *http.Request) {
	client := &http.Client{Timeout: time.Second} // want `\[LK1012 minor\] http.Client created per request in an HTTP handler; create it once and reuse it`
	_ = client
	_ = &http.Transport{MaxIdleConns: 10}
}

func fetchAll(urls []string) {
	for _, u := range urls {
		c := &http.Client{Timeout: time.Second} // want `http.Client created in a loop`
		_, _ = c.Get(u)
	}
}

func routes(mux *http.ServeMux) {
	shared := &http.Client{Timeout: time.Second}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		tr := &http.Transport{} // want `http.Transport created per request`
		_ = tr
		_ = shared
	})
}

func loopThenClosure(n int) {
	for range n {
		go func() {
			_ = &http.Client{}
		}()
	}
}

package a

import (
	"database/sql"
	"encoding/json"
	"net"
	"net/http"
	"os"
)

func leaks(db *sql.DB) error {
	resp, err := http.Get("https://example.com") // want `\[LK1017 critical\] HTTP response body must be closed: defer resp.Body.Close\(\)`
	if err != nil {
		return err
	}
	var v any
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return err
	}

	f, err := os.Open("data.txt") // want `file must be closed: defer f.Close\(\)`
	if err != nil {
		return err
	}
	_ = f.Name()

	rows, err := db.Query("SELECT 1") // want `database rows must be closed: defer rows.Close\(\)`
	if err != nil {
		return err
	}
	return rows.Err()
}

func closed(db *sql.DB) error {
	resp, err := http.Get("https://example.com")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	f, err := os.Create("out.txt")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rows, err := db.Query("SELECT 1")
	if err != nil {
		return err
	}
	rows.Close()
	return nil
}

func escaped() (net.Conn, error) {
	conn, err := net.Dial("tcp", "localhost:80")
	if err != nil {
		return nil, err
	}
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return nil, err
	}
	go serve(l)
	return conn, nil
}

func serve(l net.Listener) {
	defer l.Close()
}

type holder struct{ f *os.File }

func stored(h *holder) error {
	f, err := os.Open("x")
	if err != nil {
		return err
	}
	h.f = f
	return nil
}

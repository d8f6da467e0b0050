package a

import (
	"context"
	"net/http"
	"time"
)

var shared = &http.Client{Timeout: 30 * time.Second}

func clients(timeout time.Duration) []*http.Client {
	bare := &http.Client{}           // want `\[LK1009 major\] http.Client without Timeout will wait forever`
	zero := &http.Client{Timeout: 0} // want `http.Client without Timeout`
	configured := &http.Client{Timeout: timeout}
	later := &http.Client{Transport: http.DefaultTransport}
	later.Timeout = 10 * time.Second

	return []*http.Client{bare, zero, configured, later}
}

func requests(ctx context.Context) error {
	resp, err := http.Get("https://example.com") // want `http.Get uses DefaultClient with no timeout`
	if err != nil {
		return err
	}
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil) // want `http.NewRequest doesn't support context`
	if err != nil {
		return err
	}
	resp, err = http.DefaultClient.Do(req) // want `http.DefaultClient has no timeout`
	if err != nil {
		return err
	}
	resp.Body.Close()

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com", nil)
	if err != nil {
		return err
	}
	resp, err = shared.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func init() {
	http.DefaultClient = shared
}

package noclientdo

import "net/http"

func send(c *http.Client, req *http.Request) error {
	resp, err := c.Do(req) // want `\[LK9002 critical\] call of \(net/http.Client\).Do is not allowed`
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func get(c *http.Client) (*http.Response, error) {
	return c.Get("https://example.com")
}

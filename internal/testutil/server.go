package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewServer starts an httptest server for handler and closes it when the test ends.
func NewServer(t testing.TB, handler http.Handler) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

// Get issues a GET against the test server without following redirects and returns the
// response with its body already read.
func Get(t testing.TB, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body %s: %v", path, err)
	}
	return resp, body
}

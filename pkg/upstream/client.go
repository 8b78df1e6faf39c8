// Package upstream relays requests to the service running on the target machine.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the outcome of one upstream call: either the raw response body or
// the failure that prevented getting one. Failures are values, never HTTP errors.
type Result struct {
	Body string
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Text renders either branch of the result as response text.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Body
}

// Client calls GET endpoints under a fixed base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP: &http.Client{
			// The per call context carries the timeout.
			Timeout: 0,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        4,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// URL returns the absolute URL of an upstream path.
func (c *Client) URL(path string) string {
	return c.BaseURL + path
}

// Get performs a single GET of path bounded by timeout. It is never retried.
// The upstream status code is not interpreted; its body is relayed as is.
func (c *Client) Get(ctx context.Context, path string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
	if err != nil {
		return Result{Err: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: fmt.Errorf("reading response of %s: %w", req.URL, err)}
	}
	return Result{Body: string(body)}
}

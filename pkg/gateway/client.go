// Package gateway provides the per-call HTTP client every connector uses
// for outbound requests. A client is request-scoped: created for one
// connector invocation, never shared, never mutated by a second caller.
// The underlying transports are the shared guard-wired pair owned by the
// ssrf package.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/comply-toolkit/integration-runner/pkg/observability"
	"github.com/comply-toolkit/integration-runner/pkg/ssrf"
)

// DefaultTimeout bounds a call when the connector config does not set one.
const DefaultTimeout = 30 * time.Second

var defaultLogger = observability.NewLogger("info")

// Client issues SSRF-guarded requests against one validated base URL.
type Client struct {
	base    *url.URL
	headers http.Header
	http    *http.Client
	log     observability.Logger
}

// Option configures a Client at creation time.
type Option func(*Client)

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHeaders adds a set of default headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers.Set(k, v)
		}
	}
}

// WithTimeout overrides the default 30s call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithLogger overrides the default logger.
func WithLogger(l observability.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTransport replaces the shared guarded transport. Tests use it to stub
// the network layer; production code paths keep the default, which carries
// the resolution-time guard.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// New validates baseURL and builds an independent request-scoped client.
// Redirects are never followed: a 3xx response could otherwise retarget
// the request to an address that was never validated. The caller receives
// the 3xx response itself.
func New(baseURL string, opts ...Option) (*Client, error) {
	if err := ssrf.ValidateBaseURL(baseURL); err != nil {
		defaultLogger.Warn("base URL rejected",
			observability.String("base_url", baseURL),
			observability.Err(err))
		return nil, err
	}

	// Known to parse: ValidateBaseURL already did.
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		base:    base,
		headers: make(http.Header),
		http: &http.Client{
			Transport: ssrf.TransportFor(base.Scheme),
			Timeout:   DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: defaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the validated base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Get issues a GET against path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) Outcome {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with the given body.
func (c *Client) Post(ctx context.Context, path string, body []byte) Outcome {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with the given body.
func (c *Client) Put(ctx context.Context, path string, body []byte) Outcome {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE against path relative to the base URL.
func (c *Client) Delete(ctx context.Context, path string) Outcome {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) Outcome {
	target := strings.TrimSuffix(c.base.String(), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target += path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Failure(fmt.Sprintf("invalid request: %v", err), 0)
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = "request failed"
		}
		c.log.Warn("request failed",
			observability.String("method", method),
			observability.String("path", path),
			observability.Err(err))
		return Failure(message, 0)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("reading response failed",
			observability.String("method", method),
			observability.String("path", path),
			observability.Err(err))
		return Failure(fmt.Sprintf("reading response: %v", err), 0)
	}

	if resp.StatusCode >= 400 {
		message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		c.log.Warn("request returned error status",
			observability.String("method", method),
			observability.String("path", path),
			observability.Int("status", resp.StatusCode))
		return Failure(message, resp.StatusCode)
	}

	return Success(data, resp.StatusCode)
}

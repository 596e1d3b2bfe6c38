package httputil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/vosi/pkg/cache"
	"github.com/matzehuels/vosi/pkg/observability"
)

// DefaultTimeout bounds each request made by a client from [NewClient].
const DefaultTimeout = 30 * time.Second

// ErrNetwork is returned for connection-level failures (DNS, refused
// connections, timeouts, truncated bodies).
var ErrNetwork = errors.New("network error")

// StatusError reports a response with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client performs GET requests for VOSI documents.
//
// A Client is safe for concurrent use once configured.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	headers map[string]string
}

// NewClient creates a Client with the given response cache and default
// headers. A nil cache disables caching; ttl is passed to the cache on write
// (0 means entries never expire). Pass nil for headers if none are needed.
func NewClient(c cache.Cache, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		cache:   c,
		ttl:     ttl,
		headers: headers,
	}
}

// DefaultClient returns an uncached Client with no extra headers.
func DefaultClient() *Client {
	return NewClient(nil, 0, nil)
}

// SetHTTPClient replaces the underlying *http.Client.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// SetTimeout sets the per-request timeout of the underlying *http.Client.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// Open performs a GET for rawURL and returns the response body.
// The caller must close the body.
//
// Returns:
//   - the body on a 2xx response (or a cached copy of an earlier one)
//   - [*StatusError] for any other status
//   - an error wrapping [ErrNetwork] for transport failures
func (c *Client) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	key := cache.HTTPKey(rawURL)
	if _, isNull := c.cache.(cache.NullCache); !isNull {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, "http")
			return io.NopCloser(bytes.NewReader(data)), nil
		}
		observability.Cache().OnCacheMiss(ctx, "http")
	}

	body, err := c.do(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if _, isNull := c.cache.(cache.NullCache); isNull {
		return body, nil
	}

	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNetwork, rawURL, err)
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "http", len(data))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// OpenUncached is like [Client.Open] but always requests rawURL and never
// reads or writes the response cache. Use it for documents that describe
// live state.
func (c *Client) OpenUncached(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	return c.do(ctx, rawURL)
}

func (c *Client) do(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(rawURL, resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(rawURL string, code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{URL: rawURL, StatusCode: code}
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}

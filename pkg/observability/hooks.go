// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about endpoint discovery, cache operations,
// and HTTP calls.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    observability.SetEndpointHooks(&myEndpointHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.HTTP().OnRequest(ctx, "GET", host, path)
//	observability.Endpoint().OnFallback(ctx, "tables", url, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// EndpointHooks receives events from VOSI endpoint discovery.
type EndpointHooks interface {
	// OnFallback records a candidate URL that failed and was skipped.
	OnFallback(ctx context.Context, kind, url string, err error)

	// OnResolved records the candidate URL that answered for kind.
	OnResolved(ctx context.Context, kind, url string, attempts int)

	// OnExhausted records that no candidate answered for kind.
	OnExhausted(ctx context.Context, kind string, attempts int)
}

// CacheHooks receives events from response cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopEndpointHooks is a no-op implementation of EndpointHooks.
type NoopEndpointHooks struct{}

func (NoopEndpointHooks) OnFallback(context.Context, string, string, error) {}
func (NoopEndpointHooks) OnResolved(context.Context, string, string, int)   {}
func (NoopEndpointHooks) OnExhausted(context.Context, string, int)          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var (
	endpointHooks EndpointHooks = NoopEndpointHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetEndpointHooks registers custom endpoint discovery hooks.
func SetEndpointHooks(h EndpointHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		endpointHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Endpoint returns the registered endpoint discovery hooks.
func Endpoint() EndpointHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return endpointHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	endpointHooks = NoopEndpointHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}

package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEndpointHooks{}
	e.OnFallback(ctx, "tables", "http://example.com/tap/tables", errors.New("404"))
	e.OnResolved(ctx, "tables", "http://example.com/tables", 2)
	e.OnExhausted(ctx, "capabilities", 2)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "http")
	c.OnCacheMiss(ctx, "http")
	c.OnCacheSet(ctx, "http", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "example.com", "/tap/availability")
	h.OnResponse(ctx, "GET", "example.com", "/tap/availability", 200, time.Second)
	h.OnError(ctx, "GET", "example.com", "/tap/availability", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Endpoint().(NoopEndpointHooks); !ok {
		t.Error("Endpoint() should return NoopEndpointHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEndpoint := &testEndpointHooks{}
	SetEndpointHooks(customEndpoint)
	if Endpoint() != customEndpoint {
		t.Error("SetEndpointHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// nil is ignored
	SetHTTPHooks(nil)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore no-op HTTP hooks")
	}
}

type testEndpointHooks struct{ NoopEndpointHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

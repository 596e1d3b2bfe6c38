// Package httputil provides the HTTP transport used by VOSI service clients.
//
// # Overview
//
// [Client] issues plain GET requests and hands back the response body as a
// stream. Success means a 2xx status; any other status is reported as a
// [*StatusError] and connection-level failures wrap [ErrNetwork]. There are
// no retries: callers that want a fallback try their next candidate URL.
//
// # Caching
//
// A [Client] can be given a [cache.Cache] so that successful bodies are
// reused across service clients and processes:
//
//	c, _ := cache.NewFileCache(dir)
//	client := httputil.NewClient(c, 24*time.Hour, nil)
//
// With the default [cache.NullCache] every call goes to the network.
//
// # URLs
//
// [JoinURL] and [SiblingURL] build the conventional VOSI endpoint URLs from a
// service base URL:
//
//	httputil.JoinURL("http://example.com/tap", "tables")    // http://example.com/tap/tables
//	httputil.SiblingURL("http://example.com/tap", "tables") // http://example.com/tables
//
// [cache.Cache]: github.com/matzehuels/vosi/pkg/cache.Cache
// [cache.NullCache]: github.com/matzehuels/vosi/pkg/cache.NullCache
package httputil

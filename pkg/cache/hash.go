package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// httpPrefix namespaces response-body keys.
const httpPrefix = "http"

// HTTPKey returns the cache key for the response body of a GET to url.
// The key format is: http:sha256(url)
func HTTPKey(url string) string {
	return httpPrefix + ":" + Hash([]byte(url))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

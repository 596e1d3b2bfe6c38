package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateBaseURL checks that raw is an absolute http(s) URL suitable as a
// service base URL. Endpoint paths are appended to it verbatim, so query
// strings and fragments are rejected too.
func ValidateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return New(ErrCodeInvalidURL, "base URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "invalid base URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidURL, "base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "base URL %q has no host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidURL, "base URL %q must not carry a query or fragment", raw)
	}
	return nil
}

// ValidateTableName rejects table names that cannot be appended to a tables
// endpoint as a single path segment.
func ValidateTableName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "table name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "table name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "table name %q contains whitespace or control characters", name)
		}
	}
	if strings.ContainsAny(name, "/?#") {
		return New(ErrCodeInvalidInput, "table name %q contains URL delimiters", name)
	}
	return nil
}

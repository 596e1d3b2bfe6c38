package httputil

import "strings"

// JoinURL appends segment to base as a new path component.
// No normalisation is applied: JoinURL("http://h/a", "b") is "http://h/a/b".
func JoinURL(base, segment string) string {
	return base + "/" + segment
}

// SiblingURL replaces the last path component of base with segment.
// Trailing slashes on base are ignored, so both "http://h/a/tap" and
// "http://h/a/tap/" yield "http://h/a/" + segment.
func SiblingURL(base, segment string) string {
	trimmed := strings.TrimRight(base, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return segment
	}
	return trimmed[:i+1] + segment
}

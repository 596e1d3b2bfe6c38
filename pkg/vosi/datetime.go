package vosi

import (
	"fmt"
	"strings"
	"time"
)

// xs:dateTime as found in the wild: with or without a zone, with or without
// fractional seconds, and occasionally a bare date.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDateTime parses an xs:dateTime value. Empty input yields nil.
// Values without a zone are taken as UTC.
func parseDateTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid dateTime %q", s)
}

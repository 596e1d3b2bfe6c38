package vosi

import (
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/matzehuels/vosi/pkg/errors"
)

// Availability is the content of a VOSI availability document.
//
// Time fields are nil when the document omits them.
type Availability struct {
	Available bool       `json:"available"`
	UpSince   *time.Time `json:"up_since,omitempty"`
	DownAt    *time.Time `json:"down_at,omitempty"`
	BackAt    *time.Time `json:"back_at,omitempty"`
	Notes     []string   `json:"notes,omitempty"`
}

type availabilityDoc struct {
	XMLName   xml.Name `xml:"availability"`
	Available string   `xml:"available"`
	UpSince   string   `xml:"upSince"`
	DownAt    string   `xml:"downAt"`
	BackAt    string   `xml:"backAt"`
	Notes     []string `xml:"note"`
}

// ParseAvailability reads an availability document from r.
func ParseAvailability(r io.Reader) (*Availability, error) {
	var doc availabilityDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse availability")
	}

	available, err := parseBool(doc.Available)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse availability")
	}
	a := &Availability{Available: available}

	for _, f := range []struct {
		raw string
		dst **time.Time
	}{
		{doc.UpSince, &a.UpSince},
		{doc.DownAt, &a.DownAt},
		{doc.BackAt, &a.BackAt},
	} {
		t, err := parseDateTime(f.raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse availability")
		}
		*f.dst = t
	}

	for _, n := range doc.Notes {
		if n = strings.TrimSpace(n); n != "" {
			a.Notes = append(a.Notes, n)
		}
	}
	return a, nil
}

// parseBool accepts the xs:boolean lexical forms.
func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, errors.New(errors.ErrCodeInvalidDocument, "invalid boolean %q", s)
	}
}

package vosi

import (
	"encoding/xml"
	"io"
	"iter"
	"strings"

	"github.com/matzehuels/vosi/pkg/errors"
)

// Well-known VOSI standard identifiers.
const (
	StandardIDAvailability = "ivo://ivoa.net/std/VOSI#availability"
	StandardIDCapabilities = "ivo://ivoa.net/std/VOSI#capabilities"
	StandardIDTables       = "ivo://ivoa.net/std/VOSI#tables"
)

// Capabilities is a parsed capabilities document together with the URL it
// was fetched from.
type Capabilities struct {
	URL          string       `json:"url"`
	Capabilities []Capability `json:"capabilities"`
}

// Capability is a declared service feature.
type Capability struct {
	StandardID  string      `xml:"standardID,attr" json:"standard_id"`
	Type        string      `xml:"type,attr" json:"type,omitempty"`
	Description string      `xml:"description" json:"description,omitempty"`
	Interfaces  []Interface `xml:"interface" json:"interfaces"`
}

// Interface describes one way of reaching a capability.
type Interface struct {
	Type            string           `xml:"type,attr" json:"type,omitempty"`
	Role            string           `xml:"role,attr" json:"role,omitempty"`
	Version         string           `xml:"version,attr" json:"version,omitempty"`
	AccessURLs      []AccessURL      `xml:"accessURL" json:"access_urls"`
	SecurityMethods []SecurityMethod `xml:"securityMethod" json:"security_methods,omitempty"`
}

// AccessURL is an endpoint URL. Use is one of "full", "base" or "dir".
type AccessURL struct {
	Value string `xml:",chardata" json:"value"`
	Use   string `xml:"use,attr" json:"use,omitempty"`
}

// SecurityMethod names an authentication scheme accepted by an interface.
// An empty StandardID means anonymous access.
type SecurityMethod struct {
	StandardID string `xml:"standardID,attr" json:"standard_id,omitempty"`
}

type capabilitiesDoc struct {
	XMLName      xml.Name     `xml:"capabilities"`
	Capabilities []Capability `xml:"capability"`
}

// ParseCapabilities reads a capabilities document from r. url records where
// the document came from.
func ParseCapabilities(r io.Reader, url string) (*Capabilities, error) {
	var doc capabilitiesDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse capabilities from %s", url)
	}
	for i := range doc.Capabilities {
		doc.Capabilities[i].normalize()
	}
	return &Capabilities{URL: url, Capabilities: doc.Capabilities}, nil
}

// Len returns the number of capabilities.
func (c *Capabilities) Len() int { return len(c.Capabilities) }

// All yields each capability in declared order.
func (c *Capabilities) All() iter.Seq[*Capability] {
	return func(yield func(*Capability) bool) {
		for i := range c.Capabilities {
			if !yield(&c.Capabilities[i]) {
				return
			}
		}
	}
}

// FindByStandardID returns the first capability whose standard id starts
// with prefix.
func (c *Capabilities) FindByStandardID(prefix string) (*Capability, bool) {
	for capa := range c.All() {
		if strings.HasPrefix(capa.StandardID, prefix) {
			return capa, true
		}
	}
	return nil, false
}

// AccessURLs returns the access URL values of all interfaces, in declared
// order.
func (c *Capability) AccessURLs() []string {
	var urls []string
	for _, iface := range c.Interfaces {
		for _, u := range iface.AccessURLs {
			urls = append(urls, u.Value)
		}
	}
	return urls
}

func (c *Capability) normalize() {
	c.StandardID = strings.TrimSpace(c.StandardID)
	c.Description = strings.TrimSpace(c.Description)
	for i := range c.Interfaces {
		iface := &c.Interfaces[i]
		for j := range iface.AccessURLs {
			iface.AccessURLs[j].Value = strings.TrimSpace(iface.AccessURLs[j].Value)
		}
	}
}

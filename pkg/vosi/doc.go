// Package vosi parses the documents served by VOSI (Virtual Observatory
// Support Interfaces) endpoints.
//
// # Overview
//
// Three document kinds are supported:
//
//   - Availability: whether a service is up, and since when
//   - Capabilities: the standard features a service declares, each with one
//     or more interfaces and access URLs
//   - Tables: the schemas and tables a service exposes, optionally with
//     column and foreign key detail
//
// A single-table document (the response of a per-table tables endpoint) is
// parsed by [ParseTables] as a one-table [TableSet], or directly by
// [ParseTable].
//
// # Usage
//
//	avail, err := vosi.ParseAvailability(resp.Body)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(avail.Available, avail.UpSince)
//
//	caps, err := vosi.ParseCapabilities(resp.Body, url)
//	if c, ok := caps.FindByStandardID(vosi.StandardIDTables); ok {
//	    fmt.Println(c.AccessURLs())
//	}
//
// # Namespaces
//
// Elements are matched by local name only, so VOSI 1.0 and 1.1 documents and
// documents with unusual prefixes parse the same way.
//
// # Errors
//
// Malformed documents are reported with code INVALID_DOCUMENT from
// [github.com/matzehuels/vosi/pkg/errors].
package vosi

// Package dal provides the service-side VOSI client.
//
// A [Service] wraps the base URL of a data-access service (TAP, SIA, SSA, ...)
// and exposes its VOSI metadata endpoints:
//
//   - availability, fetched from {base}/availability
//   - capabilities, fetched from {base}/capabilities or the sibling path
//   - tables, located through the capabilities document or by convention
//
// Each document is fetched at most once per Service. A failed fetch is not
// remembered, so the next call tries again.
//
// # Usage
//
//	svc, err := dal.NewService("https://example.org/tap")
//	if err != nil {
//	    return err
//	}
//	tables, err := svc.Tables(ctx)
//	if err != nil {
//	    return err
//	}
//	for name := range tables.Keys() {
//	    fmt.Println(name)
//	}
//	obscore, err := tables.Lookup(ctx, "ivoa.obscore")
//
// Service is meant to be embedded in clients for concrete protocols, which
// add their own query methods on top.
package dal

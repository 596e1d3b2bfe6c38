// Package pkg provides the libraries behind the vosi client.
//
// # Overview
//
// VOSI (Virtual Observatory Support Interfaces) are the metadata endpoints
// every IVOA data service exposes next to its query interface:
// availability, capabilities and tables. The pkg directory is organized as:
//
//  1. [dal] - Service client: endpoint discovery and lazy table access
//  2. [vosi] - Document types and XML parsers
//  3. [httputil], [cache] - Transport and response caching
//  4. [lazy] - Compute-once cells and the named-collection contract
//  5. [render] - Schema diagrams and format conversion
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	base URL
//	    ↓
//	[dal] candidate endpoints (capabilities, then convention)
//	    ↓
//	[httputil] GET (optionally cached by [cache])
//	    ↓
//	[vosi] parse availability / capabilities / tables
//	    ↓
//	[dal.Tables] lazily completed table descriptions
//
// # Quick Start
//
//	svc, err := dal.NewService("https://archive.example.org/tap")
//	if err != nil {
//	    return err
//	}
//	up, err := svc.Available(ctx)
//	tables, err := svc.Tables(ctx)
//	for item, err := range tables.Items(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(item.Name, len(item.Value.Columns))
//	}
//
// [dal]: github.com/matzehuels/vosi/pkg/dal
// [dal.Tables]: github.com/matzehuels/vosi/pkg/dal.Tables
// [vosi]: github.com/matzehuels/vosi/pkg/vosi
// [httputil]: github.com/matzehuels/vosi/pkg/httputil
// [cache]: github.com/matzehuels/vosi/pkg/cache
// [lazy]: github.com/matzehuels/vosi/pkg/lazy
// [render]: github.com/matzehuels/vosi/pkg/render
// [errors]: github.com/matzehuels/vosi/pkg/errors
// [observability]: github.com/matzehuels/vosi/pkg/observability
// [buildinfo]: github.com/matzehuels/vosi/pkg/buildinfo
package pkg

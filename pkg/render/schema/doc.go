// Package schema renders the foreign-key structure of a table set as a
// node-link diagram.
//
// # Usage
//
//	dot := schema.ToDOT(tables, schema.Options{Columns: true})
//	svg, err := schema.RenderSVG(ctx, dot)
//
// Each table becomes a box; each foreign key becomes an arrow from the
// referencing table to its target, labelled with the joined column pairs.
// Targets that are not part of the rendered set are drawn dashed.
//
// For PDF or PNG output pass the SVG to [render.ToPDF] or [render.ToPNG].
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
//
// [render.ToPDF]: github.com/matzehuels/vosi/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/vosi/pkg/render.ToPNG
package schema

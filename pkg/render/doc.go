// Package render provides output rendering for table metadata.
//
// # Formats
//
// Diagrams are laid out as SVG. [ToPDF] and [ToPNG] pipe that SVG through
// rsvg-convert; [Available] reports whether it is installed.
//
//	svg, err := schema.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Schema Diagrams
//
// The [schema] subpackage draws a table set's foreign keys as a Graphviz
// node-link diagram.
//
// [schema]: github.com/matzehuels/vosi/pkg/render/schema
package render

package schema

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vosi/pkg/vosi"
)

// Options configures schema diagram generation.
type Options struct {
	// Columns lists each table's columns in its node label.
	Columns bool

	// LinkedOnly omits tables that neither reference nor are referenced by
	// another table.
	LinkedOnly bool
}

// ToDOT converts tables to Graphviz DOT source. Tables are emitted in the
// given order; edges follow the order of each table's foreign keys.
func ToDOT(tables []*vosi.Table, opts Options) string {
	known := make(map[string]bool, len(tables))
	linked := make(map[string]bool)
	for _, t := range tables {
		known[t.Name] = true
		for _, fk := range t.ForeignKeys {
			linked[t.Name] = true
			linked[fk.TargetTable] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph schema {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")

	for _, t := range tables {
		if opts.LinkedOnly && !linked[t.Name] {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", t.Name, fmtLabel(t, opts.Columns))
	}
	for _, name := range externalTargets(tables, known) {
		fmt.Fprintf(&buf, "  %q [style=\"rounded,dashed\"];\n", name)
	}

	buf.WriteString("\n")
	for _, t := range tables {
		for _, fk := range t.ForeignKeys {
			fmt.Fprintf(&buf, "  %q -> %q", t.Name, fk.TargetTable)
			if label := fmtKey(fk); label != "" {
				fmt.Fprintf(&buf, " [label=%q]", label)
			}
			buf.WriteString(";\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t *vosi.Table, columns bool) string {
	if !columns || len(t.Columns) == 0 {
		return t.Name
	}
	lines := []string{t.Name, ""}
	for _, c := range t.Columns {
		line := c.Name
		if dt := c.DataType.String(); dt != "" {
			line += " : " + dt
		}
		if c.Primary() {
			line = "* " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func fmtKey(fk vosi.ForeignKey) string {
	pairs := make([]string, 0, len(fk.Columns))
	for _, c := range fk.Columns {
		pairs = append(pairs, c.From+" = "+c.Target)
	}
	return strings.Join(pairs, ", ")
}

// externalTargets returns foreign-key targets missing from known, in first
// reference order.
func externalTargets(tables []*vosi.Table, known map[string]bool) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, fk := range t.ForeignKeys {
			if known[fk.TargetTable] || seen[fk.TargetTable] {
				continue
			}
			seen[fk.TargetTable] = true
			out = append(out, fk.TargetTable)
		}
	}
	return out
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales from the
// origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

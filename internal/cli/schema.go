package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/dal"
	"github.com/matzehuels/vosi/pkg/render"
	"github.com/matzehuels/vosi/pkg/render/schema"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// schemaCommand creates the schema command.
func (c *CLI) schemaCommand() *cobra.Command {
	var (
		output     string
		columns    bool
		linkedOnly bool
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "schema <baseurl>",
		Short: "Draw the foreign keys between a service's tables",
		Long: `Render the declared tables and their foreign keys as a diagram.

The output format follows the file extension: .dot, .svg, .pdf or .png.
PDF and PNG need rsvg-convert (librsvg). Without -o, DOT is written to
stdout.

By default every table is described first, which may need one request per
table; --summary draws only what the tables document already declares.

Examples:
  vosi schema https://archive.example.org/tap -o schema.svg
  vosi schema https://archive.example.org/tap --columns --linked-only -o keys.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, err := outputFormat(output)
			if err != nil {
				return err
			}

			svc, done, err := c.newService(ctx, args[0])
			if err != nil {
				return err
			}
			defer done()

			tables, err := withSpinner(ctx, c.errOut, "Fetching tables...", func() ([]*vosi.Table, error) {
				return schemaTables(ctx, svc, summary)
			})
			if err != nil {
				return err
			}

			dot := schema.ToDOT(tables, schema.Options{Columns: columns, LinkedOnly: linkedOnly})
			data, err := renderSchema(ctx, dot, format)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := c.out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered %d tables", len(tables))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg, .pdf, .png)")
	cmd.Flags().BoolVar(&columns, "columns", false, "list columns in each table box")
	cmd.Flags().BoolVar(&linkedOnly, "linked-only", false, "omit tables without foreign keys")
	cmd.Flags().BoolVar(&summary, "summary", false, "use table summaries without fetching details")
	return cmd
}

// schemaTables returns the declared tables, described unless summary is set.
func schemaTables(ctx context.Context, svc *dal.Service, summary bool) ([]*vosi.Table, error) {
	tables, err := svc.Tables(ctx)
	if err != nil {
		return nil, err
	}
	var out []*vosi.Table
	if summary {
		for t := range tables.TableSet().All() {
			out = append(out, t)
		}
		return out, nil
	}
	for t, err := range tables.Values(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func outputFormat(path string) (string, error) {
	if path == "" {
		return "dot", nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "dot", "gv":
		return "dot", nil
	case "svg", "pdf", "png":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want .dot, .svg, .pdf or .png)", filepath.Ext(path))
	}
}

func renderSchema(ctx context.Context, dot, format string) ([]byte, error) {
	if format == "dot" {
		return []byte(dot), nil
	}
	svg, err := schema.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case "pdf":
		return render.ToPDF(ctx, svg)
	case "png":
		return render.ToPNG(ctx, svg, 2.0)
	default:
		return svg, nil
	}
}

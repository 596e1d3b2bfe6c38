package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/dal"
	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// tablesCommand creates the tables command.
func (c *CLI) tablesCommand() *cobra.Command {
	var (
		asJSON bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "tables <baseurl> [table...]",
		Short: "List declared tables or describe their columns",
		Long: `Without table names, list the tables a service declares. Only the tables
document is fetched.

With table names (or --all), print each table's columns. Tables whose
summary lacks columns are fetched individually from the tables endpoint.

Examples:
  vosi tables https://archive.example.org/tap
  vosi tables https://archive.example.org/tap ivoa.obscore
  vosi tables https://archive.example.org/tap --all --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			names := args[1:]
			for _, n := range names {
				if err := errors.ValidateTableName(n); err != nil {
					return err
				}
			}

			svc, done, err := c.newService(ctx, args[0])
			if err != nil {
				return err
			}
			defer done()

			prog := newProgress(c.Logger)
			tables, err := withSpinner(ctx, c.errOut, "Fetching tables...", func() (*dal.Tables, error) {
				return svc.Tables(ctx)
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d tables", tables.Len()))

			if len(names) == 0 && !all {
				if asJSON {
					return writeJSON(c.out, tables.TableSet())
				}
				fmt.Fprint(c.out, formatTableList(tables))
				return nil
			}

			if all {
				names = nil
				for n := range tables.Keys() {
					names = append(names, n)
				}
			}
			described, err := withSpinner(ctx, c.errOut, "Fetching table details...", func() ([]*vosi.Table, error) {
				return lookupAll(ctx, tables, names)
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(c.out, described)
			}
			for i, t := range described {
				if i > 0 {
					fmt.Fprintln(c.out)
				}
				fmt.Fprint(c.out, formatTable(t))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "describe every declared table")
	return cmd
}

// lookupAll looks up names in order, stopping at the first failure.
func lookupAll(ctx context.Context, tables *dal.Tables, names []string) ([]*vosi.Table, error) {
	out := make([]*vosi.Table, 0, len(names))
	for _, n := range names {
		t, err := tables.Lookup(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func formatTableList(tables *dal.Tables) string {
	rows := make([][]string, 0, tables.Len())
	for t := range tables.TableSet().All() {
		cols := "-"
		if !t.IsShallow() {
			cols = strconv.Itoa(len(t.Columns))
		}
		desc := t.Title
		if desc == "" {
			desc = t.Description
		}
		rows = append(rows, []string{t.Name, orDash(t.Type), cols, truncate(desc, 60)})
	}
	header := StyleDim.Render(fmt.Sprintf("Source: %s · %d tables", tables.EndpointURL(), tables.Len()))
	return header + "\n" + grid([]string{"Table", "Type", "Columns", "Description"}, rows)
}

func formatTable(t *vosi.Table) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(t.Name))
	if t.NRows != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  (%d rows)", *t.NRows)))
	}
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString(StyleDim.Render(truncate(t.Description, 100)) + "\n")
	}

	rows := make([][]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		rows = append(rows, []string{
			col.Name,
			orDash(col.DataType.String()),
			orDash(col.Unit),
			orDash(col.UCD),
			orDash(strings.Join(col.Flags, ",")),
		})
	}
	b.WriteString(grid([]string{"Column", "Type", "Unit", "UCD", "Flags"}, rows))

	for _, fk := range t.ForeignKeys {
		pairs := make([]string, 0, len(fk.Columns))
		for _, fc := range fk.Columns {
			pairs = append(pairs, fc.From+" "+iconArrow+" "+fc.Target)
		}
		b.WriteString(keyValue("References", fk.TargetTable+" ("+strings.Join(pairs, ", ")+")"))
	}
	return b.String()
}

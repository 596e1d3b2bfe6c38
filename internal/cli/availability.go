package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/vosi"
)

// availabilityCommand creates the availability command.
func (c *CLI) availabilityCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "availability <baseurl>",
		Short: "Show whether a service is up",
		Long: `Fetch {baseurl}/availability and print the declared state.

Examples:
  vosi availability https://archive.example.org/tap
  vosi availability https://archive.example.org/tap --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, done, err := c.newService(ctx, args[0])
			if err != nil {
				return err
			}
			defer done()

			a, err := withSpinner(ctx, c.errOut, "Fetching availability...", func() (*vosi.Availability, error) {
				return svc.Availability(ctx)
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(c.out, a)
			}
			fmt.Fprint(c.out, formatAvailability(a))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the document as JSON")
	return cmd
}

func formatAvailability(a *vosi.Availability) string {
	var b strings.Builder
	if a.Available {
		b.WriteString(keyValue("Available", StyleSuccess.Render("yes")))
	} else {
		b.WriteString(keyValue("Available", StyleError.Render("no")))
	}
	for _, f := range []struct {
		label string
		t     *time.Time
	}{
		{"Up since", a.UpSince},
		{"Down at", a.DownAt},
		{"Back at", a.BackAt},
	} {
		if f.t != nil {
			b.WriteString(keyValue(f.label, f.t.Format(time.RFC3339)))
		}
	}
	for _, n := range a.Notes {
		b.WriteString(keyValue("Note", n))
	}
	return b.String()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/vosi"
)

// capabilitiesCommand creates the capabilities command.
func (c *CLI) capabilitiesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "capabilities <baseurl>",
		Short: "List the capabilities a service declares",
		Long: `Fetch the capabilities document, trying {baseurl}/capabilities and then
the sibling path, and list each capability with its access URLs.

Examples:
  vosi capabilities https://archive.example.org/tap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, done, err := c.newService(ctx, args[0])
			if err != nil {
				return err
			}
			defer done()

			caps, err := withSpinner(ctx, c.errOut, "Fetching capabilities...", func() (*vosi.Capabilities, error) {
				return svc.Capabilities(ctx)
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(c.out, caps)
			}
			fmt.Fprint(c.out, formatCapabilities(caps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the document as JSON")
	return cmd
}

func formatCapabilities(caps *vosi.Capabilities) string {
	var rows [][]string
	for capa := range caps.All() {
		if len(capa.Interfaces) == 0 {
			rows = append(rows, []string{capa.StandardID, "-", "-"})
			continue
		}
		for _, iface := range capa.Interfaces {
			for _, u := range iface.AccessURLs {
				rows = append(rows, []string{capa.StandardID, orDash(iface.Type), u.Value})
			}
		}
	}
	return StyleDim.Render("Source: "+caps.URL) + "\n" +
		grid([]string{"Standard ID", "Interface", "Access URL"}, rows)
}

package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sealed-prefs/models"
)

func (r *rootCommand) newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the vault keys with their metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := r.app.Vault.Aliases(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALIAS\tID\tSPEC\tPURPOSES\tCREATED")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s-%d/%s\t%s\t%s\n",
					info.Alias, info.ID,
					info.Spec.Algorithm, info.Spec.KeySize, info.Spec.BlockMode,
					info.Spec.Purposes, info.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}

func (r *rootCommand) newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show why an entry can or cannot be read, without printing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			res := r.app.Envelope.Lookup(cmd.Context(), name)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:   %s\n", name)
			fmt.Fprintf(out, "alias:  %s\n", r.app.Envelope.Alias(name))
			fmt.Fprintf(out, "status: %s\n", statusString(res.Status))
			if res.Found() {
				fmt.Fprintf(out, "size:   %d bytes\n", len(res.Data))
			}
			if res.Err != nil {
				fmt.Fprintf(out, "reason: %v\n", res.Err)
			}
			return nil
		},
	}
}

func statusString(s models.LookupStatus) string {
	switch s {
	case models.StatusFound:
		return color.GreenString(s.String())
	case models.StatusNotFound:
		return color.YellowString(s.String())
	default:
		return color.RedString(s.String())
	}
}

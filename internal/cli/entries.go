package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sealed-prefs/internal/app"
)

func (r *rootCommand) newPutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> [value]",
		Short: "Encrypt and store a value, read from stdin when omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var value []byte
			if len(args) == 2 {
				value = []byte(args[1])
			} else {
				var err error
				if value, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read value from stdin: %w", err)
				}
			}

			if err := r.app.Envelope.Store(cmd.Context(), name, value); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" Stored "+color.CyanString(name))
			return nil
		},
	}
}

func (r *rootCommand) newGetCommand() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Decrypt a value and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			value, ok := r.app.Envelope.Retrieve(cmd.Context(), name)
			if !ok {
				return fmt.Errorf("%w: %s", app.ErrEntryNotFound, name)
			}

			if toClipboard {
				if err := r.deps.clipboard(string(value)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" Copied "+color.CyanString(name)+" to the clipboard")
				return nil
			}

			_, err := cmd.OutOrStdout().Write(value)
			return err
		},
	}
	cmd.Flags().BoolVar(&toClipboard, "clip", false, "Copy the value to the clipboard instead of printing it")

	return cmd
}

func (r *rootCommand) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a stored value",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Envelope.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" Removed "+color.CyanString(args[0]))
			return nil
		},
	}
}

func (r *rootCommand) newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every stored value of the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return ErrConfirmationRequired
			}
			if err := r.app.Envelope.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" Cleared all entries")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal of every entry")

	return cmd
}

func (r *rootCommand) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored entry names",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := r.app.Envelope.Names(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [filter]",
		Short: "List patients, most recently updated first",
		Long: `List patients, most recently updated first.

An optional filter restricts the result to case-insensitive substring
matches on name, document number, insurer, or emergency contact.

Example:
  naju list
  naju list garcia`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			return runList(rootOpts, filter, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, filter string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	patients, err := opts.Service().List(cmd.Context(), filter)
	if err != nil {
		return commandError(err)
	}
	formatter.VerboseLog("%d patient(s) matched", len(patients))

	if formatter.Format == "json" {
		return formatter.JSON(patients)
	}

	if len(patients) == 0 {
		fmt.Fprintln(formatter.Writer, "No patients found.")
		return nil
	}
	renderPatientTable(formatter.Writer, patients)
	return nil
}

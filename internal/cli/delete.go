package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <patient-id>",
		Short: "Delete a patient record",
		Long: `Delete a patient record and its file index rows.

Files already copied into the patient's folder stay on disk: deletion
removes the record, not the artifacts.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if err := opts.Service().Delete(cmd.Context(), id); err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(map[string]string{"deleted": id})
	}
	fmt.Fprintf(formatter.Writer, "Deleted patient %s (files kept on disk)\n", id)
	return nil
}

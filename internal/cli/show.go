package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <patient-id>",
		Short:         "Show all stored fields of one patient",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	patient, err := opts.Service().Get(cmd.Context(), id)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(patient)
	}
	renderPatientDetail(formatter.Writer, patient)
	return nil
}

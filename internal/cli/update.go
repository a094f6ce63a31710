package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caesar-dat-com/NAJU/internal/records"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var input records.PatientInput

	cmd := &cobra.Command{
		Use:   "update <patient-id> --name <name> [field flags]",
		Short: "Replace all fields of an existing patient",
		Long: `Replace all fields of an existing patient.

There is no partial merge: every field is overwritten with the flag
values given here, so resend the complete record.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, args[0], input, cmd)
		},
	}

	addPatientFlags(cmd, &input)

	return cmd
}

func runUpdate(opts *RootOptions, id string, input records.PatientInput, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	patient, err := opts.Service().Update(cmd.Context(), id, input)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(patient)
	}
	fmt.Fprintf(formatter.Writer, "Updated patient %s (%s)\n", patient.Name, patient.ID)
	return nil
}

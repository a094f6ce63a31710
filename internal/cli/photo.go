package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPhotoCommand creates the photo command.
func NewPhotoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo <patient-id> <source-file>",
		Short: "Set a patient's profile photo",
		Long: `Set a patient's profile photo.

The source file is copied into the patient's profile subfolder under a
timestamped name; earlier photos are kept on disk.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhoto(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runPhoto(opts *RootOptions, id, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	patient, err := opts.Service().SetPhoto(cmd.Context(), id, source)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(patient)
	}
	fmt.Fprintf(formatter.Writer, "Photo set for %s: %s\n", patient.Name, patient.PhotoAbsPath)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caesar-dat-com/NAJU/internal/records"
)

// addPatientFlags registers one flag per mutable patient field. Create
// and update share the full set: updates replace every field, so both
// commands take the same input shape.
func addPatientFlags(cmd *cobra.Command, input *records.PatientInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&input.DocType, "doc-type", "", "identity document type")
	cmd.Flags().StringVar(&input.DocNumber, "doc-number", "", "identity document number")
	cmd.Flags().StringVar(&input.Insurer, "insurer", "", "insurance provider")
	cmd.Flags().StringVar(&input.BirthDate, "birth-date", "", "birth date")
	cmd.Flags().StringVar(&input.Sex, "sex", "", "sex")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.Address, "address", "", "home address")
	cmd.Flags().StringVar(&input.EmergencyContact, "emergency-contact", "", "emergency contact")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "free-form notes")
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var input records.PatientInput

	cmd := &cobra.Command{
		Use:   "create --name <name> [field flags]",
		Short: "Create a new patient record",
		Long: `Create a new patient record and provision its folder structure.

Example:
  naju create --name "Ana Ruiz" --insurer ACME --phone 555-0101`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(rootOpts, input, cmd)
		},
	}

	addPatientFlags(cmd, &input)

	return cmd
}

func runCreate(opts *RootOptions, input records.PatientInput, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	patient, err := opts.Service().Create(cmd.Context(), input)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(patient)
	}
	fmt.Fprintf(formatter.Writer, "Created patient %s (%s)\n", patient.Name, patient.ID)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExamOptions holds flags for the exam command.
type ExamOptions struct {
	Data     string
	DataFile string
}

// NewExamCommand creates the exam command.
func NewExamCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExamOptions{}

	cmd := &cobra.Command{
		Use:   "exam <patient-id>",
		Short: "Record a formal mental exam for a patient",
		Long: `Record a formal mental exam for a patient.

The exam payload is JSON supplied via --data or --data-file. It is
stored verbatim inside a timestamped report file in the patient's exams
subfolder; its internal shape is not validated.

Example:
  naju exam 7f3a1c --data '{"mood":"stable","sleep":"poor"}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExam(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "{}", "exam payload as JSON")
	cmd.Flags().StringVar(&opts.DataFile, "data-file", "", "read the exam payload from a JSON file")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")

	return cmd
}

func runExam(opts *RootOptions, examOpts *ExamOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	payload := []byte(examOpts.Data)
	if examOpts.DataFile != "" {
		data, err := os.ReadFile(examOpts.DataFile)
		if err != nil {
			return WrapExitError(ExitCommandError, "read --data-file", err)
		}
		payload = data
	}
	if !json.Valid(payload) {
		return NewExitError(ExitCommandError, "exam payload is not valid JSON")
	}

	rec, err := opts.Service().CreateExam(cmd.Context(), id, payload)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(rec)
	}
	fmt.Fprintf(formatter.Writer, "Exam recorded: %s\n", rec.AbsPath)
	return nil
}

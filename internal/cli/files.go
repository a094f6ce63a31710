package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFilesCommand creates the files command.
func NewFilesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "files <patient-id>",
		Short:         "List a patient's stored files, newest first",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runFiles(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	files, err := opts.Service().Files(cmd.Context(), id)
	if err != nil {
		return commandError(err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(files)
	}

	if len(files) == 0 {
		fmt.Fprintln(formatter.Writer, "No stored files.")
		return nil
	}
	renderFileTable(formatter.Writer, files)
	return nil
}

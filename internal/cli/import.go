package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <patient-id> <source-file>...",
		Short: "Copy files into a patient's folder and index them",
		Long: `Copy files into a patient's attachments subfolder and index them.

Sources that do not exist are skipped with a warning; the remaining
files are imported in the order given.

Example:
  naju import 7f3a1c "lab results.pdf" referral.pdf`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, id string, sources []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	imported, err := opts.Service().Import(cmd.Context(), id, sources)
	if err != nil {
		return commandError(err)
	}
	formatter.VerboseLog("imported %d of %d file(s)", len(imported), len(sources))

	if formatter.Format == "json" {
		return formatter.JSON(imported)
	}

	if len(imported) == 0 {
		fmt.Fprintln(formatter.Writer, "No files imported.")
		return nil
	}
	for _, rec := range imported {
		fmt.Fprintf(formatter.Writer, "Imported %s -> %s\n", rec.Filename, rec.AbsPath)
	}
	return nil
}

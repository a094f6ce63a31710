package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caesar-dat-com/NAJU/internal/opener"
	"github.com/caesar-dat-com/NAJU/internal/paths"
)

// NewOpenCommand creates the open command.
func NewOpenCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <patient-id> [file-id]",
		Short: "Open a patient's folder or a stored file in the OS",
		Long: `Open a patient's folder, or one of their stored files, with the
operating system's default application.

Without a file-id the patient's folder itself is opened. File IDs come
from the files command.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID := ""
			if len(args) == 2 {
				fileID = args[1]
			}
			return runOpen(rootOpts, args[0], fileID, cmd)
		},
	}

	return cmd
}

func runOpen(opts *RootOptions, patientID, fileID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	target := ""
	if fileID == "" {
		// Look the patient up first so a bad ID fails cleanly instead of
		// opening a folder that does not belong to anyone.
		if _, err := opts.Service().Get(cmd.Context(), patientID); err != nil {
			return commandError(err)
		}
		target = paths.PatientDir(opts.Service().Base, patientID)
	} else {
		id, err := strconv.ParseInt(fileID, 10, 64)
		if err != nil {
			return WrapExitError(ExitCommandError, "file-id must be numeric", err)
		}
		files, err := opts.Service().Files(cmd.Context(), patientID)
		if err != nil {
			return commandError(err)
		}
		for _, f := range files {
			if f.ID == id {
				target = f.AbsPath
				break
			}
		}
		if target == "" {
			return NewExitError(ExitFailure, fmt.Sprintf("no stored file %s for patient %s", fileID, patientID))
		}
	}

	if err := opener.Open(target); err != nil {
		return WrapExitError(ExitFailure, "open in OS", err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(map[string]string{"opened": target})
	}
	fmt.Fprintf(formatter.Writer, "Opened %s\n", target)
	return nil
}

// NewOpenPathCommand creates the open-path command.
func NewOpenPathCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open-path <path>",
		Short: "Open an arbitrary path with the OS default application",
		Long: `Open an arbitrary path with the operating system's default
application. Relative paths resolve against the data directory, so
base-relative paths stored in the database work directly.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpenPath(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runOpenPath(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	target := path
	if !filepath.IsAbs(path) {
		target = paths.ToAbsolute(opts.Service().Base, path)
	}

	if err := opener.Open(target); err != nil {
		return WrapExitError(ExitFailure, "open in OS", err)
	}

	if formatter.Format == "json" {
		return formatter.JSON(map[string]string{"opened": target})
	}
	fmt.Fprintf(formatter.Writer, "Opened %s\n", target)
	return nil
}

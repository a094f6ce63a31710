package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/caesar-dat-com/NAJU/internal/config"
	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/records"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Base    string // data directory override; empty = resolve automatically

	resolvedBase string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the NAJU CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "naju",
		Short: "NAJU - local clinical records",
		Long: `Manage a single-user clinical records store: patient records in an
embedded SQLite database, with attachments, exam reports and profile
photos kept in per-patient folders next to it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.init()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Base, "base", "", "data directory (default: resolved per platform)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewPhotoCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewFilesCommand(opts))
	cmd.AddCommand(NewExamCommand(opts))
	cmd.AddCommand(NewOpenCommand(opts))
	cmd.AddCommand(NewOpenPathCommand(opts))

	return cmd
}

// init resolves the data directory once per invocation and installs the
// process logger. Priority: --base flag, then the config file's base_dir,
// then the platform resolver.
func (o *RootOptions) init() error {
	base, err := paths.ResolveOrOverride(o.Base)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(base)
	if err != nil {
		return err
	}
	if o.Base == "" && cfg.BaseDir != "" {
		if base, err = paths.ResolveOrOverride(cfg.BaseDir); err != nil {
			return err
		}
	}
	o.resolvedBase = base

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Debug("resolved data directory", "base", base)
	return nil
}

// Service returns the records service bound to the resolved data
// directory. init must have run first.
func (o *RootOptions) Service() *records.Service {
	return records.New(o.resolvedBase)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// SPDX-License-Identifier: GPL-3.0-or-later

// Package cli implements the procdemo command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/bassosimone/procedure"
	"github.com/bassosimone/procedure/internal/demo"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath        string
	Verbose           bool
	SignalErrors      bool
	Equality          string
	ValidateSelectors bool
}

// NewRootCommand creates the root command for the procdemo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "procdemo",
		Short:        "Call unrelated kinds of callables through one interface",
		SilenceUsage: true,
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a TOML settings file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "emit structured logs to stderr")
	flags.BoolVar(&opts.SignalErrors, "signal-errors", true, "report invalid selectors as errors")
	flags.StringVar(&opts.Equality, "equality", procedure.IdentityChecked.String(), "equality mode (identity|address)")
	flags.BoolVar(&opts.ValidateSelectors, "validate-selectors", true, "check that selectors are method expressions")

	// Add subcommands
	cmd.AddCommand(NewRotateCommand(opts))
	cmd.AddCommand(NewInvokeCommand(opts))

	return cmd
}

// loadSettings returns the settings from the config file, if any, with
// explicitly set flags taking precedence.
func (opts *RootOptions) loadSettings(cmd *cobra.Command) (*demo.Settings, error) {
	settings := demo.DefaultSettings()
	if opts.ConfigPath != "" {
		loaded, err := demo.LoadSettings(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if cmd.Flags().Changed("signal-errors") {
		settings.Procedure.SignalErrors = opts.SignalErrors
	}
	if cmd.Flags().Changed("equality") {
		mode, err := procedure.ParseEqualityMode(opts.Equality)
		if err != nil {
			return nil, err
		}
		settings.Procedure.Equality = mode
	}
	if cmd.Flags().Changed("validate-selectors") {
		settings.Procedure.ValidateSelectors = opts.ValidateSelectors
	}
	return settings, nil
}

// newLogger returns a JSON logger tagged with a fresh span ID when
// verbose, and a discarding logger otherwise.
func (opts *RootOptions) newLogger(w io.Writer) demo.SLogger {
	if !opts.Verbose {
		return demo.DefaultSLogger()
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("spanID", demo.NewSpanID())
}

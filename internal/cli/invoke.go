// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/bassosimone/procedure/internal/demo"
	"github.com/spf13/cobra"
)

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke",
		Short: "Call each kind of callable once with a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := rootOpts.loadSettings(cmd)
			if err != nil {
				return err
			}
			logger := rootOpts.newLogger(cmd.ErrOrStderr())
			return demo.NewInvocation(settings, logger).Run(cmd.OutOrStdout())
		},
	}
}

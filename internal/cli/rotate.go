// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/bassosimone/procedure/internal/demo"
	"github.com/spf13/cobra"
)

// NewRotateCommand creates the rotate command.
func NewRotateCommand(rootOpts *RootOptions) *cobra.Command {
	var rotations int

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Call four procedures in order, rotating them between rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := rootOpts.loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rotations") {
				if rotations < 0 {
					return fmt.Errorf("--rotations must be non-negative, got %d", rotations)
				}
				settings.Rotations = rotations
			}
			logger := rootOpts.newLogger(cmd.ErrOrStderr())
			return demo.NewRotation(settings, logger).Run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&rotations, "rotations", 4, "number of rounds")

	return cmd
}

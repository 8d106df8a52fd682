// SPDX-License-Identifier: GPL-3.0-or-later

// Command procdemo runs the procedure demonstration scenarios.
package main

import (
	"os"

	"github.com/bassosimone/procedure/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

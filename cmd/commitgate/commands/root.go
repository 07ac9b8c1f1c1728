// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate - Commitgate is a standalone commit message linter for git repositories.
It enforces a fixed conventional commit policy on message structure, line lengths, commit types, and issue tracker references, one check at a time, stopping at the first violation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the commitgate root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITGATE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "commitgate [file]",
		Short:         "Commitgate - Commit message linting for git hooks",
		Long:          "Commitgate validates a commit message against a fixed policy of structure,\nlength, commit type, and issue tracker rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// An argument that is not a subcommand is the commit message
			// file, so `commitgate "$1"` works directly as the hook line.
			return lintFile(cmd, args[0])
		},
	}

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of commitgate",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commitgate version %s\n", version)
		},
	})

	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newPolicyCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUninstallCmd())

	return cmd
}

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

	"github.com/bartekus/commitgate/internal/hookfile"
)

func newInstallCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg hook in the enclosing repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			gitDir, err := gitDirHere()
			if err != nil {
				return err
			}
			path, err := hookfile.Install(gitDir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite a hook commitgate did not write")
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commit-msg hook from the enclosing repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			gitDir, err := gitDirHere()
			if err != nil {
				return err
			}
			removed, err := hookfile.Uninstall(gitDir)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Removed commit-msg hook")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No commit-msg hook installed.")
			}
			return nil
		},
	}
}

func gitDirHere() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return hookfile.FindGitDir(wd)
}

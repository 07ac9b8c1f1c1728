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
	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/report"
	"github.com/bartekus/commitgate/internal/rules"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate a commit message file",
		Long: `Check the commit message in <file> against every rule in order and report
each check on standard output. The first violation stops the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lintFile(cmd, args[0])
		},
	}
}

// lintFile is the gate: read, evaluate, report. A rule violation exits with
// code 1, an unreadable message file with code 2.
func lintFile(cmd *cobra.Command, path string) error {
	msg, err := message.ReadFile(path, message.Options{})
	if err != nil {
		return clierr.Wrap(clierr.ExitReadError, "commit message not readable", err)
	}

	verdict := engine.New(rules.Registry).Evaluate(msg)
	report.New(cmd.OutOrStdout()).Verdict(verdict)

	if failed, ok := verdict.Failed(); ok {
		return clierr.New(clierr.ExitViolation, "commit message rejected ("+failed.Rule+")")
	}
	return nil
}

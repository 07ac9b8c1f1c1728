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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/commitgate/internal/policy"
)

func newPolicyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show the commit message policy",
		Long: `Print the compiled-in policy: length limits, accepted commit types, and
the issue tracker catalog. The policy is fixed; there is no configuration
file to load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := policy.Default()
			w := cmd.OutOrStdout()

			switch format {
			case "text":
				return printPolicyText(w, p)
			case "json":
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")
				return encoder.Encode(p)
			case "yaml":
				data, err := yaml.Marshal(p)
				if err != nil {
					return fmt.Errorf("encoding policy: %w", err)
				}
				_, err = w.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json|yaml")
	return cmd
}

func printPolicyText(w io.Writer, p policy.Policy) error {
	fmt.Fprintf(w, "Title max length:  %d\n", p.TitleMaxLen)
	fmt.Fprintf(w, "Body max length:   %d\n", p.BodyMaxLen)
	fmt.Fprintf(w, "Minimum lines:     %d\n", p.MinLines)
	fmt.Fprintf(w, "Commit types:      %s\n", strings.Join(p.CommitTypes, ", "))
	fmt.Fprintf(w, "Issue required by: %s\n", strings.Join(p.IssueRequiredTypes, ", "))
	fmt.Fprintln(w, "Issue trackers:")
	for _, tr := range p.Trackers {
		fmt.Fprintf(w, "  %s %s\n", tr.Prefix, tr.Name)
	}
	return nil
}

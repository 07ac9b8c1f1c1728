package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/internal/rules"
)

func newRulesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(rules.Registry))
			for _, r := range rules.Registry {
				ids = append(ids, r.ID())
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(map[string]any{"rules": ids})
			}

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output rules in JSON")
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialinherit/store"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := cfg.StorePath()
			if path == "" {
				return errors.New("no run log configured (use --db or store.path)")
			}

			s, err := store.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer s.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := s.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"runs":  runs,
					"count": len(runs),
				})
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "No runs recorded.")
				return nil
			}
			fmt.Fprintf(w, "%-5s %-20s %-19s %-10s %8s %8s %10s  %s\n",
				"ID", "WHEN", "RULE", "EFFORT", "SEED", "ROUNDS", "TIES", "LABEL")
			for _, r := range runs {
				fmt.Fprintf(w, "%-5d %-20s %-19s %-10s %8d %8d %10d  %s\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Rule, r.EffortMode,
					r.Seed, r.Report.Rounds, r.Report.Ties.Total(), r.Label)
			}

			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 for all)")

	return cmd
}

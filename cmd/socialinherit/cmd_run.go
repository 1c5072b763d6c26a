// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialinherit/analysis"
	"github.com/katalvlaran/socialinherit/config"
	"github.com/katalvlaran/socialinherit/core"
	"github.com/katalvlaran/socialinherit/graphio"
	"github.com/katalvlaran/socialinherit/store"
	"github.com/katalvlaran/socialinherit/turnover"
)

// runFlags maps run flags onto simulation.* keys.
var runFlags = map[string]string{
	"rule":        "simulation.rule",
	"iterations":  "simulation.iterations",
	"seed":        "simulation.seed",
	"effort-mode": "simulation.effort_mode",
}

// runResult is the JSON form of a finished run.
type runResult struct {
	RunID  int64            `json:"run_id,omitempty"`
	Output string           `json:"output,omitempty"`
	Report turnover.Report  `json:"report"`
	Before analysis.Summary `json:"before"`
	After  analysis.Summary `json:"after"`
	Error  string           `json:"error,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run turnover rounds over a network",
		Long: `Run loads a network (or generates one from the generator settings),
replaces individuals one per round under the configured rule, and
reports what changed.

If a run log is configured (--db or store.path) the run is recorded.`,
		Example: `  socialinherit run --in net.yaml --rule weighted_induction --iterations 500 --out after.yaml
  socialinherit run --config sim.yaml --db runs.db --label baseline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			overrideFlags(cmd, cfg, runFlags)
			overrideFlags(cmd, cfg, generatorFlags)
			if err = cfg.Validate(); err != nil {
				return err
			}
			log := cfg.NewLogger(cmd.ErrOrStderr())

			in, _ := cmd.Flags().GetString("in")
			g, err := loadNetwork(cfg, in)
			if err != nil {
				return err
			}

			rule, _ := cfg.Rule()
			mode, _ := cfg.EffortMode()
			opts := []turnover.Option{
				turnover.WithSeed(cfg.Seed()),
				turnover.WithLogger(log),
				turnover.WithEffortMode(mode),
			}
			if trace, _ := cmd.Flags().GetBool("trace"); trace {
				opts = append(opts, turnover.WithObserver(traceTo(cmd.ErrOrStderr())))
			}
			sim, err := turnover.New(rule, opts...)
			if err != nil {
				return err
			}

			res := runResult{}
			if res.Before, err = analysis.Summarize(g, analysis.WithSeed(cfg.Seed())); err != nil {
				return err
			}
			res.Report, err = sim.Run(ctx, g, cfg.Iterations())
			runErr := err
			if runErr != nil {
				res.Error = runErr.Error()
			}
			if res.After, err = analysis.Summarize(g, analysis.WithSeed(cfg.Seed())); err != nil {
				return err
			}

			if out, _ := cmd.Flags().GetString("out"); out != "" {
				if err = graphio.WriteFile(out, g); err != nil {
					return err
				}
				res.Output = out
			}

			if path := cfg.StorePath(); path != "" {
				label, _ := cmd.Flags().GetString("label")
				res.RunID, err = recordRun(cmd, path, store.Run{
					Rule:       rule.Name(),
					Params:     store.ParamsOf(rule),
					EffortMode: mode.String(),
					Seed:       cfg.Seed(),
					Iterations: cfg.Iterations(),
					Label:      label,
					Report:     res.Report,
					Before:     &res.Before,
					After:      &res.After,
				})
				if err != nil {
					return err
				}
				log.Info().Int64("run_id", res.RunID).Str("db", path).Msg("run recorded")
			}

			if jsonOutput(cmd) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err = enc.Encode(res); err != nil {
					return err
				}
			} else {
				printRun(cmd.OutOrStdout(), res)
			}

			return runErr
		},
	}
	cmd.Flags().String("in", "", "Input network YAML (default: generate from config)")
	cmd.Flags().String("out", "", "Write the final network to this file")
	cmd.Flags().String("rule", "", "Rule (induction, weighted_induction, style_copying)")
	cmd.Flags().Int("iterations", 0, "Number of rounds")
	cmd.Flags().Int64("seed", 0, "Simulation seed")
	cmd.Flags().String("effort-mode", "", "Stranger effort shapes (faithful, corrected)")
	cmd.Flags().String("label", "", "Label stored with the run")
	cmd.Flags().Bool("trace", false, "Print every committed round to stderr")
	addGeneratorFlags(cmd)

	return cmd
}

func loadNetwork(cfg *config.Config, in string) (*core.Graph, error) {
	if in != "" {
		return graphio.ReadFile(in)
	}
	g, err := cfg.Generator().Build()
	if err != nil {
		return nil, fmt.Errorf("failed to generate network: %w", err)
	}

	return g, nil
}

func recordRun(cmd *cobra.Command, path string, r store.Run) (int64, error) {
	s, err := store.Open(cmd.Context(), path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return s.SaveRun(cmd.Context(), r)
}

func traceTo(w io.Writer) func(turnover.RoundReport) {
	return func(rr turnover.RoundReport) {
		fmt.Fprintf(w, "round %d: removed %s, sponsor %s (%d partners), newcomer %s, ties %d/%d/%d\n",
			rr.Round, rr.Removed, rr.Sponsor, rr.PartnerNumber, rr.Newcomer,
			rr.Ties.Sponsor, rr.Ties.Partner, rr.Ties.Stranger)
	}
}

func printRun(w io.Writer, res runResult) {
	rep := res.Report
	fmt.Fprintf(w, "Rule: %s\n", rep.Rule)
	fmt.Fprintf(w, "Rounds: %d\n", rep.Rounds)
	fmt.Fprintf(w, "Ties formed: %d (sponsor %d, partner %d, stranger %d)\n",
		rep.Ties.Total(), rep.Ties.Sponsor, rep.Ties.Partner, rep.Ties.Stranger)
	fmt.Fprintf(w, "Trials: %d (sponsor %d, partner %d, stranger %d)\n",
		rep.Trials.Total(), rep.Trials.Sponsor, rep.Trials.Partner, rep.Trials.Stranger)
	if res.Error != "" {
		fmt.Fprintf(w, "Stopped: %s\n", res.Error)
	}
	fmt.Fprintln(w)
	printSummaryPair(w, res.Before, res.After)
	if res.Output != "" {
		fmt.Fprintf(w, "\nNetwork written to %s\n", res.Output)
	}
	if res.RunID != 0 {
		fmt.Fprintf(w, "Recorded as run %d\n", res.RunID)
	}
}

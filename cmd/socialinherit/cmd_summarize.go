// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialinherit/analysis"
	"github.com/katalvlaran/socialinherit/graphio"
)

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <network.yaml>",
		Short: "Print structural statistics of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			s, err := analysis.Summarize(g, analysis.WithSeed(seed))
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			printSummary(cmd.OutOrStdout(), s)

			return nil
		},
	}
	cmd.Flags().Int64("seed", 1, "Seed for community detection")

	return cmd
}

type summaryRow struct {
	label string
	value func(analysis.Summary) string
}

var summaryRows = []summaryRow{
	{"individuals", func(s analysis.Summary) string { return fmt.Sprint(s.Vertices) }},
	{"ties", func(s analysis.Summary) string { return fmt.Sprint(s.Edges) }},
	{"mean degree", func(s analysis.Summary) string { return fmt.Sprintf("%.3f", s.MeanDegree) }},
	{"sd degree", func(s analysis.Summary) string { return fmt.Sprintf("%.3f", s.SDDegree) }},
	{"max degree", func(s analysis.Summary) string { return fmt.Sprint(s.MaxDegree) }},
	{"isolated", func(s analysis.Summary) string { return fmt.Sprint(s.Isolated) }},
	{"transitivity", func(s analysis.Summary) string { return fmt.Sprintf("%.4f", s.Transitivity) }},
	{"mean clustering", func(s analysis.Summary) string { return fmt.Sprintf("%.4f", s.MeanLocalClustering) }},
	{"components", func(s analysis.Summary) string { return fmt.Sprint(s.Components) }},
	{"largest component", func(s analysis.Summary) string { return fmt.Sprint(s.LargestComponent) }},
	{"mean distance", func(s analysis.Summary) string { return fmt.Sprintf("%.3f", s.MeanDistance) }},
	{"diameter", func(s analysis.Summary) string { return fmt.Sprint(s.Diameter) }},
	{"communities", func(s analysis.Summary) string { return fmt.Sprint(s.Communities) }},
	{"modularity", func(s analysis.Summary) string { return fmt.Sprintf("%.4f", s.Modularity) }},
	{"mean weight", func(s analysis.Summary) string { return fmt.Sprintf("%.3f", s.MeanWeight) }},
	{"sd weight", func(s analysis.Summary) string { return fmt.Sprintf("%.3f", s.SDWeight) }},
}

func printSummary(w io.Writer, s analysis.Summary) {
	for _, r := range summaryRows {
		fmt.Fprintf(w, "%-18s %s\n", r.label+":", r.value(s))
	}
}

func printSummaryPair(w io.Writer, before, after analysis.Summary) {
	fmt.Fprintf(w, "%-18s %12s %12s\n", "", "before", "after")
	for _, r := range summaryRows {
		fmt.Fprintf(w, "%-18s %12s %12s\n", r.label+":", r.value(before), r.value(after))
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialinherit/config"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "socialinherit",
		Short: "Simulate membership turnover in social networks",
		Long: `socialinherit simulates a social network whose members are replaced
one at a time. Each newcomer is introduced by a randomly chosen sponsor
and inherits ties through social induction or by copying the sponsor's
style.

Settings come from defaults, an optional --config file, and
SOCIALINHERIT_* environment variables, in increasing precedence.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("db", "", "SQLite run log path")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newRunCmd(),
		newSummarizeCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

// loadConfig resolves the effective configuration for cmd: defaults, the
// --config file, environment, then the global flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Set("logging.level", lvl)
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Set("store.path", db)
	}

	return cfg, nil
}

// overrideFlags copies every changed local flag into cfg under its key.
func overrideFlags(cmd *cobra.Command, cfg *config.Config, keys map[string]string) {
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		cfg.Set(key, f.Value.String())
	}
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// Package cli implements the command-line driving adapter. Commands
// talk to the core exclusively through the driving ports, which are
// held in package-level variables so tests can swap in mocks.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/torqueware/assist/internal/config"
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/ports/driving"
	"github.com/torqueware/assist/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// Services the commands depend on. Wired from config on first use;
// tests replace them directly.
var (
	cfg *config.Config

	assistantService driving.Assistant
	indexerService   driving.Indexer
	ticketTracker    driven.TicketTracker
	historyStore     driven.HistoryStore
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "assist",
	Short: "Documentation-grounded customer support assistant",
	Long: `Assist answers customer support questions from indexed vehicle
documentation and manages support tickets in the configured issue tracker.

Questions are answered with retrieval-augmented generation: relevant
passages are pulled from the indexed PDF manuals and the model answers
from those passages only, citing the source file and page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logger.Init(verbose)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.assist/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

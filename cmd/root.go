// Package cmd contains the CLI commands for the cmk application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// jsonOutput holds the global --json flag state.
var jsonOutput bool

func init() {
	rootCmd = NewRootCmd()
}

// GetJSON returns the current global --json flag state.
func GetJSON() bool {
	return jsonOutput
}

// NewRootCmd creates a new root command instance with all subcommands wired
// to their default filesystem-backed services. This is useful for testing
// to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmk",
		Short: "Validate and query a trading-card-game content repository",
		Long: "cmk validates a repository of card, collection, rules, and deck JSON files\n" +
			"against a declarative schema, and answers card lookups over the same tree.",
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	cmd.AddCommand(NewValidateCmd(newValidateRunner))
	cmd.AddCommand(NewCardCmd(&cardAdapter{}))
	cmd.AddCommand(NewInitCmd())

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

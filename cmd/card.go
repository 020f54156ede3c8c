package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// CardSummary is the fixed field set printed for one card lookup match.
type CardSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Faction string `json:"faction"`
	Rarity  string `json:"rarity"`
	Unique  bool   `json:"unique"`
	Path    string `json:"path"`
}

// TreeStats holds per-category file counts for a repository tree.
type TreeStats struct {
	CardFiles       int `json:"card_files"`
	CollectionFiles int `json:"collection_files"`
	RulesFiles      int `json:"rules_files"`
	DeckFiles       int `json:"deck_files"`
	IndexedCards    int `json:"indexed_cards"`
}

// CardService defines the interface for card lookups over a repository tree.
type CardService interface {
	ByName(ctx context.Context, root, query string) ([]CardSummary, error)
	ByRef(ctx context.Context, root, ref string) (*CardSummary, error)
	Stats(ctx context.Context, root string) (*TreeStats, error)
}

// NewCardCmd creates the card command with the given service.
func NewCardCmd(svc CardService) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "card",
		Short:        "Look up cards in the repository tree",
		SilenceUsage: true,
	}

	cmd.AddCommand(newCardNameCmd(svc))
	cmd.AddCommand(newCardRefCmd(svc))
	cmd.AddCommand(newCardStatsCmd(svc))

	return cmd
}

func newCardNameCmd(svc CardService) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:          "name <query>",
		Short:        "Find cards by name (diacritic- and case-insensitive)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := svc.ByName(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}
			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), summaries)
				return nil
			}
			for _, s := range summaries {
				printSummary(cmd, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root directory")

	return cmd
}

func newCardRefCmd(svc CardService) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:          "ref <id>",
		Short:        "Find one card by reference id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := svc.ByRef(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}
			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), summary)
				return nil
			}
			printSummary(cmd, *summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root directory")

	return cmd
}

func newCardStatsCmd(svc CardService) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:          "stats",
		Short:        "Show per-category file counts for the tree",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := svc.Stats(cmd.Context(), root)
			if err != nil {
				return err
			}
			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), stats)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cards: %d files (%d indexed)\n", stats.CardFiles, stats.IndexedCards)
			fmt.Fprintf(cmd.OutOrStdout(), "collection: %d files\n", stats.CollectionFiles)
			fmt.Fprintf(cmd.OutOrStdout(), "rules: %d files\n", stats.RulesFiles)
			fmt.Fprintf(cmd.OutOrStdout(), "decks: %d files\n", stats.DeckFiles)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root directory")

	return cmd
}

// printSummary writes one card summary as a single human-readable line.
func printSummary(cmd *cobra.Command, s CardSummary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  type=%s faction=%s rarity=%s unique=%t  (%s)\n",
		s.ID, s.Name, s.Type, s.Faction, s.Rarity, s.Unique, s.Path)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/cardmark-go/internal/lock"
)

// lockFileName is the advisory lock file guarding schema bootstrap.
const lockFileName = ".cmk.lock"

// defaultSchema is the starter schema written by cmk init. The constraint
// values mirror the validator defaults so a fresh repository validates the
// same with or without editing the file.
const defaultSchema = `{
  "rules": {
    "card_file": {
      "required_fields": ["id", "name", "type", "faction", "rarity"],
      "id_pattern": "[A-Z]{2,3}_[A-Z0-9]{2,10}_[0-9]{1,4}",
      "allowed_rarities": ["C", "R", "U"]
    },
    "collection_file": {
      "required_fields": ["card_id", "count"],
      "count_min": 0,
      "count_max": 99
    },
    "rules_file": {
      "required_keywords": ["mulligan", "turn", "victory"]
    },
    "deck_file": {
      "required_fields": ["deck_name", "hero_id", "cards"],
      "constraints": {
        "min_cards": 40,
        "max_cards": 60,
        "unique_hero": true,
        "max_same_card": 3,
        "max_rare_cards": 15,
        "max_unique_cards": 3,
        "same_faction_as_hero": true
      }
    }
  }
}
`

// NewInitCmd creates the init command, which writes a starter validation
// schema into the repository. The write is guarded by an advisory lock so
// concurrent inits cannot clobber each other.
func NewInitCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a starter validation schema into the repository",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath := filepath.Join(root, filepath.FromSlash(DefaultSchemaPath))

			if _, err := os.Stat(schemaPath); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema already exists at %s\n", schemaPath)
				return nil
			}

			l := lock.NewFromPath(filepath.Join(root, lockFileName))
			if err := l.TryLock(cmd.Context()); err != nil {
				return err
			}
			defer l.Unlock()

			if err := os.MkdirAll(filepath.Dir(schemaPath), 0o755); err != nil {
				return fmt.Errorf("creating schema directory: %w", err)
			}
			if err := os.WriteFile(schemaPath, []byte(defaultSchema), 0o644); err != nil {
				return fmt.Errorf("writing schema: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized validation schema at %s\n", schemaPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root directory")

	return cmd
}

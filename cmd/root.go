package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexi",
	Short: "Spaced-repetition vocabulary trainer",
	Long:  "Lexi — terminal vocabulary trainer that schedules reviews with SM-2 spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation drops straight into an urgent flashcard session.
		return runPractice(cmd, "flashcards", "urgent", "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXI_DB env var)")
	rootCmd.PersistentFlags().String("dsn", "", "Postgres DSN; takes precedence over --db")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(favCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDSN returns the store DSN using --dsn (highest priority), then
// --db, then the LEXI_DB env var or the default XDG path.
func resolveDSN(cmd *cobra.Command) (string, error) {
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		return dsn, nil
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DSN and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dsn, err := resolveDSN(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DSN: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/store"
	"github.com/abhisek/lexi/internal/word"
)

var addCmd = &cobra.Command{
	Use:   "add <term> <meaning>",
	Short: "Add a word to the collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		deckID, err := deckIDFromFlag(ctx, cmd, st)
		if err != nil {
			return err
		}

		w := word.Word{Term: args[0], Meaning: args[1], DeckID: deckID}
		if err := st.Words().Create(ctx, &w); err != nil {
			return fmt.Errorf("add word: %w", err)
		}
		fmt.Printf("Added %q (%s)\n", w.Term, w.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("deck", "", "Deck name to add the word to")
}

// deckIDFromFlag resolves the --deck flag to a deck ID, or nil when the
// flag is unset.
func deckIDFromFlag(ctx context.Context, cmd *cobra.Command, st *store.Store) (*string, error) {
	name, _ := cmd.Flags().GetString("deck")
	if name == "" {
		return nil, nil
	}
	d, err := st.Decks().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w (create it with `lexi deck add`)", name, err)
	}
	return &d.ID, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/word"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List words",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		favorites, _ := cmd.Flags().GetBool("favorites")
		wrong, _ := cmd.Flags().GetBool("wrong")

		var words []word.Word
		switch {
		case favorites:
			words, err = st.Words().FavoriteWords(ctx)
		case wrong:
			words, err = st.Words().WrongWords(ctx)
		default:
			var deckID *string
			deckID, err = deckIDFromFlag(ctx, cmd, st)
			if err != nil {
				return err
			}
			words, err = st.Words().List(ctx, deckID)
		}
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}
		if len(words) == 0 {
			fmt.Println("No words found.")
			return nil
		}

		showIDs, _ := cmd.Flags().GetBool("ids")
		for _, w := range words {
			fav := " "
			if w.Favorite {
				fav = "*"
			}
			if showIDs {
				fmt.Printf("%s ", w.ID)
			}
			fmt.Printf("%s %-20s %-28s %-9s %5.0f%%\n",
				fav, w.Term, w.Meaning, w.Mastery, w.Accuracy()*100)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("ids", false, "Show word IDs (for fav/rm)")
	listCmd.Flags().String("deck", "", "Only words from this deck")
	listCmd.Flags().Bool("favorites", false, "Only favorite words")
	listCmd.Flags().Bool("wrong", false, "Only words answered wrong last time")
}

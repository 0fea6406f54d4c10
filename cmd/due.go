package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show words due for review",
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

		words, err := st.Words().DueWords(ctx, deckID, 0)
		if err != nil {
			return fmt.Errorf("due words: %w", err)
		}
		if len(words) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		fmt.Printf("%d due for review:\n", len(words))
		now := time.Now()
		for _, w := range words {
			overdue := now.Sub(w.NextReview).Hours() / 24
			fmt.Printf("  %-20s %-9s due %s (%.0fd overdue)\n",
				w.Term, w.Mastery, w.NextReview.Format("2006-01-02"), overdue)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().String("deck", "", "Only words from this deck")
}

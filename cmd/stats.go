package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		s, err := st.Words().CollectStats(ctx, deckID)
		if err != nil {
			return fmt.Errorf("collect stats: %w", err)
		}

		fmt.Printf("Words:     %d (%d new, %d learning, %d mastered)\n",
			s.Total, s.New, s.Learning, s.Mastered)
		fmt.Printf("Due now:   %d\n", s.DueNow)
		fmt.Printf("Favorites: %d\n", s.Favorites)
		if s.Trained > 0 {
			fmt.Printf("Answers:   %d (%d correct, %d wrong, %.0f%% accuracy)\n",
				s.Trained, s.Correct, s.Incorrect,
				float64(s.Correct)/float64(s.Trained)*100)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("deck", "", "Only words from this deck")
}

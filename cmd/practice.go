package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/practice"
	"github.com/abhisek/lexi/internal/srs"
	"github.com/abhisek/lexi/internal/ui"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		selection, _ := cmd.Flags().GetString("select")
		deck, _ := cmd.Flags().GetString("deck")
		return runPractice(cmd, mode, selection, deck)
	},
}

func init() {
	practiceCmd.Flags().String("mode", "flashcards", "Exercise mode: flashcards, quiz, writing, match")
	practiceCmd.Flags().String("select", "urgent", "Word selection: urgent, free, wrong, favorites, deck")
	practiceCmd.Flags().String("deck", "", "Deck name (implies --select deck when set)")
}

// reportListener counts session activity for the post-run report.
type reportListener struct {
	answered int
	rounds   int
	perfect  int
}

func (l *reportListener) AnswerRecorded(id string, q srs.Quality, correct bool) { l.answered++ }

func (l *reportListener) StreakUpdated(streak int) {}


func (l *reportListener) RoundCompleted(perfect bool) {
	l.rounds++
	if perfect {
		l.perfect++
	}
}
func (l *reportListener) SessionCompleted(kind practice.SelectionKind, mode practice.Mode, peakStreak int) {
	if l.answered == 0 {
		return
	}
	fmt.Printf("Practiced %d correct answers over %d rounds (%d perfect), best streak %d.\n",
		l.answered, l.rounds, l.perfect, peakStreak)
}

// runPractice opens the store, builds the pool, and launches the TUI.
func runPractice(cmd *cobra.Command, modeName, selectionName, deckName string) error {
	mode, err := practice.ParseMode(modeName)
	if err != nil {
		return err
	}
	if deckName != "" && selectionName == "urgent" {
		selectionName = "deck"
	}
	kind, err := practice.ParseSelectionKind(selectionName)
	if err != nil {
		return err
	}
	if kind == practice.SelectionDeck && deckName == "" {
		return fmt.Errorf("--select deck requires --deck")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	var deckID *string
	if deckName != "" {
		d, err := st.Decks().GetByName(ctx, deckName)
		if err != nil {
			return fmt.Errorf("deck %q: %w", deckName, err)
		}
		deckID = &d.ID
	}

	cfg := practice.DefaultConfig()
	pool, err := practice.BuildPool(ctx, st.Words(), kind, deckID, cfg)
	if err != nil {
		return fmt.Errorf("build pool: %w", err)
	}

	report := &reportListener{}
	session := practice.NewSession(st.Words(), cfg, report)
	session.Start(pool, mode, kind)

	return ui.Run(ui.Options{
		Session:     session,
		Pool:        pool,
		Mode:        mode,
		Kind:        kind,
		DeckID:      deckID,
		Distractors: st.Words(),
	})
}

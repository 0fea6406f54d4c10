package practice

import "github.com/abhisek/lexi/internal/srs"

// Listener receives session signals for cross-cutting consumers (UI,
// gamification). Delivery is synchronous and in submission order; a
// listener must not call back into the session.
type Listener interface {
	// AnswerRecorded fires for correct answers only.
	AnswerRecorded(wordID string, quality srs.Quality, correct bool)

	// StreakUpdated fires alongside AnswerRecorded with the new streak.
	StreakUpdated(streak int)

	// RoundCompleted fires when a round's last word has been advanced past.
	// perfect is true when the round had at least one word and no incorrect
	// answers.
	RoundCompleted(perfect bool)

	// SessionCompleted fires on End with the peak streak achieved.
	SessionCompleted(kind SelectionKind, mode Mode, peakStreak int)
}

// NopListener ignores every signal.
type NopListener struct{}

func (NopListener) AnswerRecorded(string, srs.Quality, bool)  {}
func (NopListener) StreakUpdated(int)                         {}
func (NopListener) RoundCompleted(bool)                       {}
func (NopListener) SessionCompleted(SelectionKind, Mode, int) {}

// Listeners fans signals out to several listeners in order.
func Listeners(ls ...Listener) Listener {
	return multiListener(ls)
}

type multiListener []Listener

func (m multiListener) AnswerRecorded(id string, q srs.Quality, correct bool) {
	for _, l := range m {
		l.AnswerRecorded(id, q, correct)
	}
}

func (m multiListener) StreakUpdated(streak int) {
	for _, l := range m {
		l.StreakUpdated(streak)
	}
}

func (m multiListener) RoundCompleted(perfect bool) {
	for _, l := range m {
		l.RoundCompleted(perfect)
	}
}

func (m multiListener) SessionCompleted(kind SelectionKind, mode Mode, peak int) {
	for _, l := range m {
		l.SessionCompleted(kind, mode, peak)
	}
}

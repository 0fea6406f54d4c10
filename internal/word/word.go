// Package word defines the vocabulary domain types shared by the store,
// the practice orchestrator, and the CLI.
package word

import (
	"errors"
	"time"

	"github.com/abhisek/lexi/internal/srs"
)

// ErrNotFound is returned when a word lookup by ID matches nothing.
var ErrNotFound = errors.New("word: not found")

// Word is a learnable term with its durable practice statistics.
// All scheduling fields are written exclusively through the store's
// RecordAnswer path.
type Word struct {
	ID      string  `db:"id"`
	DeckID  *string `db:"deck_id"`
	Term    string  `db:"term"`
	Meaning string  `db:"meaning"`

	TimesTrained   int `db:"times_trained"`
	TimesCorrect   int `db:"times_correct"`
	TimesIncorrect int `db:"times_incorrect"`

	LastTrained       *time.Time `db:"last_trained"`
	LastAnswerCorrect *bool      `db:"last_answer_correct"`

	Mastery      MasteryLevel `db:"mastery"`
	Easiness     float64      `db:"easiness"`
	Repetitions  int          `db:"repetitions"`
	IntervalDays int          `db:"interval_days"`
	NextReview   time.Time    `db:"next_review"`

	Favorite  bool      `db:"favorite"`
	CreatedAt time.Time `db:"created_at"`
}

// SRSState extracts the SM-2 triple for the scheduler.
func (w *Word) SRSState() srs.State {
	return srs.State{
		Easiness:     w.Easiness,
		Repetitions:  w.Repetitions,
		IntervalDays: w.IntervalDays,
	}
}

// ApplySRSState writes a computed SM-2 triple back onto the word.
func (w *Word) ApplySRSState(s srs.State) {
	w.Easiness = s.Easiness
	w.Repetitions = s.Repetitions
	w.IntervalDays = s.IntervalDays
}

// Due reports whether the word is eligible for review at the given time.
func (w *Word) Due(now time.Time) bool {
	return !w.NextReview.After(now)
}

// Accuracy returns the lifetime share of correct answers, or 0 if the word
// was never trained.
func (w *Word) Accuracy() float64 {
	if w.TimesTrained == 0 {
		return 0
	}
	return float64(w.TimesCorrect) / float64(w.TimesTrained)
}

// Deck is a named collection of words.
type Deck struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

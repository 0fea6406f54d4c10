package practice

import "fmt"

// Mode is the exercise type a session presents.
type Mode string

const (
	// ModeFlashcards shows the term, reveals the meaning, and lets the
	// learner self-rate recall on the 0-5 scale.
	ModeFlashcards Mode = "flashcards"

	// ModeQuiz is multiple choice: the right meaning among random
	// distractors.
	ModeQuiz Mode = "quiz"

	// ModeWriting asks the learner to type the meaning.
	ModeWriting Mode = "writing"

	// ModeMatch pairs terms with meanings inside one small round.
	ModeMatch Mode = "match"
)

// RoundSize returns the round size for this mode under the given config.
func (m Mode) RoundSize(cfg Config) int {
	if m == ModeMatch {
		return cfg.MatchRoundSize
	}
	return cfg.RoundSize
}

// countsProgressOnCorrectOnly reports whether session progress counts a
// word only once it is answered correctly. Match mode is stricter than the
// rest here; every other mode counts a word as practiced on any answer.
func (m Mode) countsProgressOnCorrectOnly() bool {
	return m == ModeMatch
}

// ParseMode validates a mode name from user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFlashcards, ModeQuiz, ModeWriting, ModeMatch:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (flashcards, quiz, writing, match)", s)
}

// SelectionKind describes how the session's word pool was chosen.
type SelectionKind string

const (
	// SelectionUrgent is the due-date-ordered pool. Its order is a
	// priority ranking and is preserved, never shuffled.
	SelectionUrgent SelectionKind = "urgent"

	// SelectionFree pulls the least recently practiced words.
	SelectionFree SelectionKind = "free"

	// SelectionWrong pulls words whose last answer was incorrect.
	SelectionWrong SelectionKind = "wrong"

	// SelectionFavorites pulls the user's favorites.
	SelectionFavorites SelectionKind = "favorites"

	// SelectionDeck pulls a whole deck.
	SelectionDeck SelectionKind = "deck"
)

// preservesOrder reports whether the pool order is meaningful and must not
// be shuffled.
func (k SelectionKind) preservesOrder() bool {
	return k == SelectionUrgent
}

// ParseSelectionKind validates a selection name from user input.
func ParseSelectionKind(s string) (SelectionKind, error) {
	switch SelectionKind(s) {
	case SelectionUrgent, SelectionFree, SelectionWrong, SelectionFavorites, SelectionDeck:
		return SelectionKind(s), nil
	}
	return "", fmt.Errorf("unknown selection %q (urgent, free, wrong, favorites, deck)", s)
}

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseNotStarted Phase = "not-started"
	PhaseInProgress Phase = "in-progress"
	PhaseFinished   Phase = "finished"
)

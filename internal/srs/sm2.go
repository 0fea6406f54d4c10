package srs

import (
	"errors"
	"fmt"
	"math"
)

// Quality rates a single recall attempt on the SM-2 scale of 0-5.
type Quality int

const (
	QualityBlackout  Quality = iota // no recall at all
	QualityWrong                    // wrong, but recognized the answer when shown
	QualityFamiliar                 // wrong, but the answer felt familiar
	QualityHard                     // correct with significant effort
	QualityHesitant                 // correct after some hesitation
	QualityPerfect                  // instant, confident recall
)

// PassThreshold is the lowest quality that counts as a successful recall.
const PassThreshold = QualityHard

// MinEasiness is the floor for the easiness factor. SM-2 never lets a word
// become harder than this, or intervals would stop growing entirely.
const MinEasiness = 1.3

// DefaultEasiness is the easiness factor assigned to never-trained words.
const DefaultEasiness = 2.5

// ErrInvalidQuality is returned when a quality rating falls outside 0-5.
// Use errors.Is to check.
var ErrInvalidQuality = errors.New("srs: quality outside 0-5")

// Valid reports whether q is within the SM-2 rating scale.
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Passing reports whether q counts as a correct recall.
func (q Quality) Passing() bool {
	return q >= PassThreshold
}

// State is the per-word SM-2 triple that drives review scheduling.
type State struct {
	// Easiness controls interval growth; higher means the word is easier.
	// Always >= MinEasiness.
	Easiness float64

	// Repetitions counts consecutive passing recalls since the last failure.
	Repetitions int

	// IntervalDays is the number of days until the next scheduled review.
	IntervalDays int
}

// DefaultState returns the state assigned to a newly added word.
func DefaultState() State {
	return State{Easiness: DefaultEasiness, Repetitions: 0, IntervalDays: 1}
}

// Next computes the state after one recall attempt. It is pure: no clock,
// no side effects. The caller derives the next review date as
// now + IntervalDays.
//
// A failing recall (q < PassThreshold) resets repetitions and schedules the
// word for tomorrow; easiness is left untouched on that branch. A passing
// recall grows the interval on the 1 / 6 / ceil(interval*EF) ramp, using
// the easiness the word had going into this answer, and then adjusts
// easiness by the standard SM-2 delta, clamped at MinEasiness.
func Next(s State, q Quality) (State, error) {
	if !q.Valid() {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, int(q))
	}

	if !q.Passing() {
		return State{
			Easiness:     s.Easiness,
			Repetitions:  0,
			IntervalDays: 1,
		}, nil
	}

	next := State{Repetitions: s.Repetitions + 1}

	switch next.Repetitions {
	case 1:
		next.IntervalDays = 1
	case 2:
		next.IntervalDays = 6
	default:
		next.IntervalDays = int(math.Ceil(float64(s.IntervalDays) * s.Easiness))
	}

	ef := s.Easiness + (0.1 - float64(QualityPerfect-q)*(0.08+float64(QualityPerfect-q)*0.02))
	if ef < MinEasiness {
		ef = MinEasiness
	}
	next.Easiness = ef

	return next, nil
}

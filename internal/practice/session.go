// Package practice turns a pool of words into bounded rounds, tracks
// round-local correctness and streaks, and forwards first attempts to the
// store. Session bookkeeping and persisted word statistics are deliberately
// separate: they have different lifetimes and reset rules.
package practice

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/lexi/internal/srs"
	"github.com/abhisek/lexi/internal/word"
)

// AnswerWriter persists the outcome of a first attempt. *store.WordRepo
// satisfies it; tests use a fake.
type AnswerWriter interface {
	RecordAnswer(ctx context.Context, id string, q srs.Quality) (*word.Word, error)
}

// Session is the live state of one practice activity. A session is owned by
// one UI flow; all methods serialize on an internal mutex, so a store write
// still in flight blocks End and StartNextRound until it lands.
type Session struct {
	mu       sync.Mutex
	cfg      Config
	writer   AnswerWriter
	listener Listener

	id    string
	phase Phase
	mode  Mode
	kind  SelectionKind

	pool    []word.Word
	poolIdx int

	round     []word.Word
	wordIdx   int
	correct   map[string]bool
	incorrect map[string]bool

	practiced  map[string]bool
	streak     int
	peakStreak int
}

// NewSession creates an idle session. writer may be nil for dry runs
// (nothing is persisted); listener may be nil.
func NewSession(writer AnswerWriter, cfg Config, listener Listener) *Session {
	if listener == nil {
		listener = NopListener{}
	}
	return &Session{
		cfg:       cfg,
		writer:    writer,
		listener:  listener,
		phase:     PhaseNotStarted,
		correct:   map[string]bool{},
		incorrect: map[string]bool{},
		practiced: map[string]bool{},
	}
}

// Start begins a session over the given pool. The pool is copied; urgent
// pools keep their priority order, every other kind is shuffled so repeat
// sessions don't present words in a fixed order. An empty pool finishes the
// session immediately — "nothing to practice" is a normal outcome, not an
// error.
func (s *Session) Start(pool []word.Word, mode Mode, kind SelectionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.NewString()
	s.mode = mode
	s.kind = kind
	s.pool = append([]word.Word(nil), pool...)
	if !kind.preservesOrder() {
		rand.Shuffle(len(s.pool), func(i, j int) {
			s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
		})
	}

	s.poolIdx = 0
	s.streak = 0
	s.peakStreak = 0
	s.practiced = map[string]bool{}

	if len(s.pool) == 0 {
		s.round = nil
		s.wordIdx = 0
		s.correct = map[string]bool{}
		s.incorrect = map[string]bool{}
		s.phase = PhaseFinished
		return
	}

	s.startNextRoundLocked()
}

// StartNextRound slices the next chunk of the pool into a fresh round.
// Called externally ("play again") after a round finishes. With the pool
// exhausted the session stays finished; the caller should End it.
func (s *Session) StartNextRound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseNotStarted {
		return
	}
	s.startNextRoundLocked()
}

func (s *Session) startNextRoundLocked() {
	size := s.mode.RoundSize(s.cfg)
	end := s.poolIdx + size
	if end > len(s.pool) {
		end = len(s.pool)
	}

	round := s.pool[s.poolIdx:end]
	if len(round) == 0 {
		// Pool exhausted: normal termination, not an error.
		s.phase = PhaseFinished
		return
	}

	s.round = round
	s.poolIdx = end
	s.wordIdx = 0
	s.correct = map[string]bool{}
	s.incorrect = map[string]bool{}
	// The running streak carries into the new round as its starting peak.
	s.peakStreak = s.streak
	s.phase = PhaseInProgress
}

// RecordAnswer applies one answer to the session. Only the first attempt
// for a word within a round reaches the store; a retry of a previously
// wrong word updates round bookkeeping only, so the persisted failure from
// the first attempt stands. A second correct answer for the same word is a
// complete no-op.
//
// Store errors propagate unmodified and leave the round in its pre-call
// state so the caller can retry the whole answer.
func (s *Session) RecordAnswer(ctx context.Context, id string, q srs.Quality) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !q.Valid() {
		return fmt.Errorf("record answer: %w: got %d", srs.ErrInvalidQuality, int(q))
	}
	if s.phase != PhaseInProgress {
		return nil
	}
	if s.correct[id] {
		return nil
	}

	firstAttempt := !s.correct[id] && !s.incorrect[id]
	if firstAttempt && s.writer != nil {
		if _, err := s.writer.RecordAnswer(ctx, id, q); err != nil {
			return err
		}
	}

	correct := q.Passing()
	if correct {
		s.correct[id] = true
		s.streak++
		if s.streak > s.peakStreak {
			s.peakStreak = s.streak
		}
	} else {
		// Sticky for the rest of the round, even if a retry succeeds.
		s.incorrect[id] = true
		s.streak = 0
	}

	if correct || !s.mode.countsProgressOnCorrectOnly() {
		s.practiced[id] = true
	}

	if correct {
		s.listener.AnswerRecorded(id, q, true)
		s.listener.StreakUpdated(s.streak)
	}
	return nil
}

// NextWord advances the round cursor. Moving past the last word completes
// the round: the round-completed signal fires and the session transitions
// to finished until StartNextRound or End.
func (s *Session) NextWord() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return
	}

	s.wordIdx++
	if s.wordIdx >= len(s.round) {
		// Zero-word rounds never happen here (startNextRound finishes the
		// session instead), so the length guard covers the vacuous case.
		perfect := len(s.incorrect) == 0 && len(s.round) > 0
		s.phase = PhaseFinished
		s.listener.RoundCompleted(perfect)
	}
}

// End abandons whatever is in progress, resets to the initial state, and
// emits the session-completed signal. Idempotent and callable from any
// phase. No partial-round data survives; word statistics already written
// through RecordAnswer stand.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind, mode, peak := s.kind, s.mode, s.peakStreak

	s.id = ""
	s.pool = nil
	s.poolIdx = 0
	s.round = nil
	s.wordIdx = 0
	s.correct = map[string]bool{}
	s.incorrect = map[string]bool{}
	s.practiced = map[string]bool{}
	s.streak = 0
	s.peakStreak = 0
	s.phase = PhaseNotStarted

	s.listener.SessionCompleted(kind, mode, peak)
}

// CurrentWord returns the word under the round cursor, or nil when no round
// is active or the cursor has run past the round.
func (s *Session) CurrentWord() *word.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInProgress {
		return nil
	}
	if s.wordIdx < 0 || s.wordIdx >= len(s.round) {
		return nil
	}
	w := s.round[s.wordIdx]
	return &w
}

// Progress returns the share of the full pool practiced so far, 0 for an
// empty pool.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) == 0 {
		return 0
	}
	return float64(len(s.practiced)) / float64(len(s.pool))
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ID returns the session's UUID, empty before Start.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Mode returns the session's exercise mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Streak returns the running count of consecutive correct answers.
func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// PeakStreak returns the highest streak reached in the current round,
// including the streak carried in from earlier rounds.
func (s *Session) PeakStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peakStreak
}

// RoundWords returns a copy of the current round's words.
func (s *Session) RoundWords() []word.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]word.Word(nil), s.round...)
}

// RoundAnswered reports how the given word fared in the current round:
// answeredCorrect covers any correct answer, answeredWrong is the sticky
// incorrect marker.
func (s *Session) RoundAnswered(id string) (answeredCorrect, answeredWrong bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct[id], s.incorrect[id]
}

// RoundProgress returns the round cursor position and the round length.
func (s *Session) RoundProgress() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wordIdx, len(s.round)
}

// PoolSize returns the number of words selected for this session.
func (s *Session) PoolSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool)
}

// PoolExhausted reports whether every pool word has been placed in a round.
func (s *Session) PoolExhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poolIdx >= len(s.pool)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abhisek/lexi/internal/srs"
	"github.com/abhisek/lexi/internal/word"
)

// masteryOrder sorts tiers new < learning < mastered in SQL, matching
// word.MasteryLevel.Rank.
const masteryOrder = `CASE mastery WHEN 'new' THEN 0 WHEN 'learning' THEN 1 ELSE 2 END`

// WordRepo handles database operations for words. The clock is a field so
// tests can pin "now".
type WordRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewWordRepo creates a repo over the given handle with the real clock.
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db, now: time.Now}
}

// WithClock returns a copy of the repo using the given clock.
func (r *WordRepo) WithClock(now func() time.Time) *WordRepo {
	return &WordRepo{db: r.db, now: now}
}

// Create inserts a new word. Missing fields get their defaults: a fresh
// UUID, mastery "new", the SM-2 defaults, and a next review of "now" so the
// word is immediately eligible for practice.
func (r *WordRepo) Create(ctx context.Context, w *word.Word) error {
	now := r.now()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Mastery == "" {
		w.Mastery = word.MasteryNew
	}
	if w.Easiness == 0 {
		st := srs.DefaultState()
		w.Easiness = st.Easiness
		w.Repetitions = st.Repetitions
		w.IntervalDays = st.IntervalDays
	}
	if w.NextReview.IsZero() {
		w.NextReview = now
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}

	q := r.db.Rebind(`
		INSERT INTO words (
			id, deck_id, term, meaning,
			times_trained, times_correct, times_incorrect,
			last_trained, last_answer_correct,
			mastery, easiness, repetitions, interval_days, next_review,
			favorite, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, q,
		w.ID, w.DeckID, w.Term, w.Meaning,
		w.TimesTrained, w.TimesCorrect, w.TimesIncorrect,
		w.LastTrained, w.LastAnswerCorrect,
		w.Mastery, w.Easiness, w.Repetitions, w.IntervalDays, w.NextReview,
		w.Favorite, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create word: %w", err)
	}
	return nil
}

// Get returns a word by ID, or word.ErrNotFound.
func (r *WordRepo) Get(ctx context.Context, id string) (*word.Word, error) {
	var w word.Word
	err := r.db.GetContext(ctx, &w, r.db.Rebind(`SELECT * FROM words WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, word.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return &w, nil
}

// List returns all words, optionally scoped to a deck, ordered by term.
func (r *WordRepo) List(ctx context.Context, deckID *string) ([]word.Word, error) {
	q := `SELECT * FROM words`
	args := []any{}
	if deckID != nil {
		q += ` WHERE deck_id = ?`
		args = append(args, *deckID)
	}
	q += ` ORDER BY term`

	var words []word.Word
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Delete removes a word by ID.
func (r *WordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM words WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return word.ErrNotFound
	}
	return nil
}

// SetFavorite flips the user-set favorite flag. Independent of scheduling.
func (r *WordRepo) SetFavorite(ctx context.Context, id string, fav bool) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE words SET favorite = ? WHERE id = ?`), fav, id)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return word.ErrNotFound
	}
	return nil
}

// DueWords returns words whose review date has passed, newest tiers first
// (new < learning < mastered), then least recently trained, never-trained
// words leading. A non-positive limit means no limit.
func (r *WordRepo) DueWords(ctx context.Context, deckID *string, limit int) ([]word.Word, error) {
	q := `SELECT * FROM words WHERE next_review <= ?`
	args := []any{r.now()}
	if deckID != nil {
		q += ` AND deck_id = ?`
		args = append(args, *deckID)
	}
	q += ` ORDER BY ` + masteryOrder + `, last_trained ASC NULLS FIRST`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	var words []word.Word
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("due words: %w", err)
	}
	return words, nil
}

// LeastPracticedWords returns words ordered by how long ago they were last
// trained (never-trained first, then oldest), ignoring review dates.
func (r *WordRepo) LeastPracticedWords(ctx context.Context, deckID *string, limit int, exclude []string) ([]word.Word, error) {
	q := `SELECT * FROM words WHERE 1=1`
	args := []any{}
	if deckID != nil {
		q += ` AND deck_id = ?`
		args = append(args, *deckID)
	}
	if len(exclude) > 0 {
		q += ` AND id NOT IN (?)`
		args = append(args, exclude)
	}
	q += ` ORDER BY last_trained ASC NULLS FIRST, created_at ASC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	q, expanded, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("least practiced words: %w", err)
	}

	var words []word.Word
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), expanded...); err != nil {
		return nil, fmt.Errorf("least practiced words: %w", err)
	}
	return words, nil
}

// RandomDistractors samples up to n words at random, excluding the given
// IDs. Used to build wrong options for multiple-choice rounds. Returns
// fewer than n when the pool is small; short supply is not an error.
func (r *WordRepo) RandomDistractors(ctx context.Context, exclude []string, n int, deckID *string) ([]word.Word, error) {
	if n <= 0 {
		return nil, nil
	}

	q := `SELECT * FROM words WHERE 1=1`
	args := []any{}
	if deckID != nil {
		q += ` AND deck_id = ?`
		args = append(args, *deckID)
	}
	if len(exclude) > 0 {
		q += ` AND id NOT IN (?)`
		args = append(args, exclude)
	}
	q += ` ORDER BY RANDOM() LIMIT ?`
	args = append(args, n)

	q, expanded, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("random distractors: %w", err)
	}

	var words []word.Word
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), expanded...); err != nil {
		return nil, fmt.Errorf("random distractors: %w", err)
	}
	return words, nil
}

// WrongWords returns words whose most recent answer was incorrect, least
// recently trained first.
func (r *WordRepo) WrongWords(ctx context.Context) ([]word.Word, error) {
	var words []word.Word
	q := `SELECT * FROM words WHERE last_answer_correct = ? ORDER BY last_trained ASC NULLS FIRST`
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), false); err != nil {
		return nil, fmt.Errorf("wrong words: %w", err)
	}
	return words, nil
}

// FavoriteWords returns all words flagged as favorites.
func (r *WordRepo) FavoriteWords(ctx context.Context) ([]word.Word, error) {
	var words []word.Word
	q := `SELECT * FROM words WHERE favorite = ? ORDER BY term`
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(q), true); err != nil {
		return nil, fmt.Errorf("favorite words: %w", err)
	}
	return words, nil
}

// RecordAnswer applies one recall attempt to a word: it runs the SM-2 step,
// advances the mastery tier, bumps the counters, and reschedules the review,
// all in a single transaction. This is the only code path that writes
// scheduling state.
func (r *WordRepo) RecordAnswer(ctx context.Context, id string, q srs.Quality) (*word.Word, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("record answer: %w: got %d", srs.ErrInvalidQuality, int(q))
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("record answer: begin: %w", err)
	}
	defer tx.Rollback()

	var w word.Word
	err = tx.GetContext(ctx, &w, tx.Rebind(`SELECT * FROM words WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, word.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("record answer: load: %w", err)
	}

	next, err := srs.Next(w.SRSState(), q)
	if err != nil {
		return nil, err
	}

	now := r.now()
	correct := q.Passing()

	w.ApplySRSState(next)
	w.Mastery = w.Mastery.Advance(correct)
	w.TimesTrained++
	if correct {
		w.TimesCorrect++
	} else {
		w.TimesIncorrect++
	}
	w.LastTrained = &now
	w.LastAnswerCorrect = &correct
	w.NextReview = now.AddDate(0, 0, next.IntervalDays)

	upd := tx.Rebind(`
		UPDATE words SET
			times_trained = ?, times_correct = ?, times_incorrect = ?,
			last_trained = ?, last_answer_correct = ?,
			mastery = ?, easiness = ?, repetitions = ?, interval_days = ?,
			next_review = ?
		WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, upd,
		w.TimesTrained, w.TimesCorrect, w.TimesIncorrect,
		w.LastTrained, w.LastAnswerCorrect,
		w.Mastery, w.Easiness, w.Repetitions, w.IntervalDays,
		w.NextReview, w.ID,
	); err != nil {
		return nil, fmt.Errorf("record answer: update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("record answer: commit: %w", err)
	}
	return &w, nil
}

// Stats summarizes a word collection for the stats command.
type Stats struct {
	Total      int
	New        int
	Learning   int
	Mastered   int
	DueNow     int
	Favorites  int
	Trained    int
	Correct    int
	Incorrect  int
}

// CollectStats aggregates tier counts, due counts, and lifetime answer
// totals, optionally scoped to a deck.
func (r *WordRepo) CollectStats(ctx context.Context, deckID *string) (*Stats, error) {
	words, err := r.List(ctx, deckID)
	if err != nil {
		return nil, err
	}

	now := r.now()
	st := &Stats{Total: len(words)}
	for i := range words {
		w := &words[i]
		switch w.Mastery {
		case word.MasteryNew:
			st.New++
		case word.MasteryLearning:
			st.Learning++
		case word.MasteryMastered:
			st.Mastered++
		}
		if w.Due(now) {
			st.DueNow++
		}
		if w.Favorite {
			st.Favorites++
		}
		st.Trained += w.TimesTrained
		st.Correct += w.TimesCorrect
		st.Incorrect += w.TimesIncorrect
	}
	return st, nil
}

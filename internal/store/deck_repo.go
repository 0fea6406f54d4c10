package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abhisek/lexi/internal/word"
)

// ErrDeckNotFound is returned when a deck lookup matches nothing.
var ErrDeckNotFound = errors.New("store: deck not found")

// DeckRepo handles database operations for decks.
type DeckRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDeckRepo creates a repo over the given handle with the real clock.
func NewDeckRepo(db *sqlx.DB) *DeckRepo {
	return &DeckRepo{db: db, now: time.Now}
}

// Create inserts a new deck with the given name.
func (r *DeckRepo) Create(ctx context.Context, name string) (*word.Deck, error) {
	d := &word.Deck{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: r.now(),
	}
	q := r.db.Rebind(`INSERT INTO decks (id, name, created_at) VALUES (?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, q, d.ID, d.Name, d.CreatedAt); err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return d, nil
}

// List returns all decks ordered by name.
func (r *DeckRepo) List(ctx context.Context) ([]word.Deck, error) {
	var decks []word.Deck
	if err := r.db.SelectContext(ctx, &decks, `SELECT * FROM decks ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// GetByName returns the deck with the given name, or ErrDeckNotFound.
func (r *DeckRepo) GetByName(ctx context.Context, name string) (*word.Deck, error) {
	var d word.Deck
	err := r.db.GetContext(ctx, &d, r.db.Rebind(`SELECT * FROM decks WHERE name = ?`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return &d, nil
}

// Delete removes a deck. Its words go with it (ON DELETE CASCADE).
func (r *DeckRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM decks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrDeckNotFound
	}
	return nil
}

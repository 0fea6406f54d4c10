package practice

import (
	"context"
	"fmt"

	"github.com/abhisek/lexi/internal/word"
)

// PoolSource is the slice of the store the pool builder reads.
// *store.WordRepo satisfies it.
type PoolSource interface {
	DueWords(ctx context.Context, deckID *string, limit int) ([]word.Word, error)
	LeastPracticedWords(ctx context.Context, deckID *string, limit int, exclude []string) ([]word.Word, error)
	WrongWords(ctx context.Context) ([]word.Word, error)
	FavoriteWords(ctx context.Context) ([]word.Word, error)
	List(ctx context.Context, deckID *string) ([]word.Word, error)
}

// BuildPool selects the session's word pool for the given kind. Urgent and
// free pools are capped at cfg.PoolCap; the explicit kinds (wrong,
// favorites, deck) return everything they match. An empty result is normal.
func BuildPool(ctx context.Context, src PoolSource, kind SelectionKind, deckID *string, cfg Config) ([]word.Word, error) {
	switch kind {
	case SelectionUrgent:
		return src.DueWords(ctx, deckID, cfg.PoolCap)
	case SelectionFree:
		return src.LeastPracticedWords(ctx, deckID, cfg.PoolCap, nil)
	case SelectionWrong:
		return src.WrongWords(ctx)
	case SelectionFavorites:
		return src.FavoriteWords(ctx)
	case SelectionDeck:
		return src.List(ctx, deckID)
	}
	return nil, fmt.Errorf("build pool: unknown selection kind %q", kind)
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexi/internal/srs"
	"github.com/abhisek/lexi/internal/word"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testRepo(t *testing.T) *WordRepo {
	t.Helper()
	s := openTestStore(t)
	return s.Words().WithClock(func() time.Time { return testNow })
}

func mustCreate(t *testing.T, r *WordRepo, w word.Word) word.Word {
	t.Helper()
	require.NoError(t, r.Create(context.Background(), &w))
	return w
}

func TestCreateDefaults(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w := mustCreate(t, r, word.Word{Term: "ephemeral", Meaning: "short-lived"})

	got, err := r.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, word.MasteryNew, got.Mastery)
	assert.Equal(t, srs.DefaultEasiness, got.Easiness)
	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, 1, got.IntervalDays)
	assert.Nil(t, got.LastTrained)
	assert.Nil(t, got.LastAnswerCorrect)
	// A fresh word is due immediately.
	assert.True(t, got.Due(testNow))
}

func TestGetNotFound(t *testing.T) {
	r := testRepo(t)
	_, err := r.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, word.ErrNotFound)
}

func TestDueWordsOrdering(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	past := testNow.Add(-48 * time.Hour)
	older := testNow.Add(-240 * time.Hour)

	// Not due: scheduled tomorrow.
	mustCreate(t, r, word.Word{Term: "future", Meaning: "m", NextReview: testNow.Add(24 * time.Hour), Mastery: word.MasteryNew})
	// Due words across tiers and training recency.
	mastered := mustCreate(t, r, word.Word{Term: "mastered", Meaning: "m", NextReview: past, Mastery: word.MasteryMastered, LastTrained: &older})
	learningOld := mustCreate(t, r, word.Word{Term: "learning-old", Meaning: "m", NextReview: past, Mastery: word.MasteryLearning, LastTrained: &older})
	learningNew := mustCreate(t, r, word.Word{Term: "learning-recent", Meaning: "m", NextReview: past, Mastery: word.MasteryLearning, LastTrained: &past})
	fresh := mustCreate(t, r, word.Word{Term: "fresh", Meaning: "m", NextReview: past, Mastery: word.MasteryNew})

	got, err := r.DueWords(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, got, 4)

	// new tier first; within a tier, never-trained then oldest-trained.
	assert.Equal(t, fresh.ID, got[0].ID)
	assert.Equal(t, learningOld.ID, got[1].ID)
	assert.Equal(t, learningNew.ID, got[2].ID)
	assert.Equal(t, mastered.ID, got[3].ID)
}

func TestDueWordsLimitAndDeckScope(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	decks := &DeckRepo{db: r.db, now: func() time.Time { return testNow }}
	d, err := decks.Create(ctx, "travel")
	require.NoError(t, err)

	past := testNow.Add(-time.Hour)
	for _, term := range []string{"a", "b", "c"} {
		mustCreate(t, r, word.Word{Term: term, Meaning: "m", NextReview: past, DeckID: &d.ID})
	}
	mustCreate(t, r, word.Word{Term: "undeckd", Meaning: "m", NextReview: past})

	scoped, err := r.DueWords(ctx, &d.ID, 0)
	require.NoError(t, err)
	assert.Len(t, scoped, 3)

	limited, err := r.DueWords(ctx, nil, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDueWordsEmptyIsNotAnError(t *testing.T) {
	r := testRepo(t)
	got, err := r.DueWords(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLeastPracticedWordsExcludes(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	trained := testNow.Add(-time.Hour)
	a := mustCreate(t, r, word.Word{Term: "a", Meaning: "m"})
	b := mustCreate(t, r, word.Word{Term: "b", Meaning: "m", LastTrained: &trained})
	c := mustCreate(t, r, word.Word{Term: "c", Meaning: "m"})

	got, err := r.LeastPracticedWords(ctx, nil, 0, []string{c.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Never-trained before trained.
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestRandomDistractorsShortSupply(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	target := mustCreate(t, r, word.Word{Term: "target", Meaning: "m"})
	mustCreate(t, r, word.Word{Term: "other", Meaning: "m"})

	got, err := r.RandomDistractors(ctx, []string{target.ID}, 3, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEqual(t, target.ID, got[0].ID)
}

func TestWrongAndFavoriteWords(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w := mustCreate(t, r, word.Word{Term: "missed", Meaning: "m"})
	_, err := r.RecordAnswer(ctx, w.ID, srs.QualityWrong)
	require.NoError(t, err)

	fav := mustCreate(t, r, word.Word{Term: "starred", Meaning: "m"})
	require.NoError(t, r.SetFavorite(ctx, fav.ID, true))

	wrong, err := r.WrongWords(ctx)
	require.NoError(t, err)
	require.Len(t, wrong, 1)
	assert.Equal(t, w.ID, wrong[0].ID)

	favs, err := r.FavoriteWords(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, fav.ID, favs[0].ID)
}

func TestRecordAnswerUpdatesEverything(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w := mustCreate(t, r, word.Word{Term: "recall", Meaning: "m"})

	got, err := r.RecordAnswer(ctx, w.ID, srs.QualityPerfect)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TimesTrained)
	assert.Equal(t, 1, got.TimesCorrect)
	assert.Equal(t, 0, got.TimesIncorrect)
	assert.Equal(t, word.MasteryLearning, got.Mastery)
	assert.Equal(t, 1, got.Repetitions)
	assert.Equal(t, 1, got.IntervalDays)
	require.NotNil(t, got.LastTrained)
	assert.True(t, got.LastTrained.Equal(testNow))
	require.NotNil(t, got.LastAnswerCorrect)
	assert.True(t, *got.LastAnswerCorrect)
	assert.True(t, got.NextReview.Equal(testNow.AddDate(0, 0, 1)))

	// The update must be durable, not just on the returned value.
	stored, err := r.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TimesTrained)
	assert.Equal(t, word.MasteryLearning, stored.Mastery)
}

func TestRecordAnswerCounterInvariant(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w := mustCreate(t, r, word.Word{Term: "counted", Meaning: "m"})

	qualities := []srs.Quality{5, 2, 4, 0, 3, 5, 1}
	for i, q := range qualities {
		got, err := r.RecordAnswer(ctx, w.ID, q)
		require.NoError(t, err)
		assert.Equal(t, i+1, got.TimesTrained, "after answer %d", i+1)
		assert.Equal(t, got.TimesTrained, got.TimesCorrect+got.TimesIncorrect, "after answer %d", i+1)
	}
}

func TestRecordAnswerFailureSchedulesTomorrow(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w := mustCreate(t, r, word.Word{Term: "lapse", Meaning: "m", Easiness: 2.2, Repetitions: 4, IntervalDays: 30})

	got, err := r.RecordAnswer(ctx, w.ID, srs.QualityBlackout)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, 1, got.IntervalDays)
	assert.Equal(t, 2.2, got.Easiness)
	assert.True(t, got.NextReview.Equal(testNow.AddDate(0, 0, 1)))
	assert.Equal(t, word.MasteryLearning, got.Mastery)
}

func TestRecordAnswerNotFound(t *testing.T) {
	r := testRepo(t)
	_, err := r.RecordAnswer(context.Background(), "missing", srs.QualityPerfect)
	assert.ErrorIs(t, err, word.ErrNotFound)
}

func TestRecordAnswerInvalidQuality(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	w := mustCreate(t, r, word.Word{Term: "strict", Meaning: "m"})

	_, err := r.RecordAnswer(ctx, w.ID, srs.Quality(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, srs.ErrInvalidQuality))

	// No partial mutation.
	stored, err := r.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.TimesTrained)
}

func TestDeckDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	words := s.Words().WithClock(func() time.Time { return testNow })
	decks := s.Decks()

	d, err := decks.Create(ctx, "doomed")
	require.NoError(t, err)
	w := mustCreate(t, words, word.Word{Term: "gone", Meaning: "m", DeckID: &d.ID})

	require.NoError(t, decks.Delete(ctx, d.ID))

	_, err = words.Get(ctx, w.ID)
	assert.ErrorIs(t, err, word.ErrNotFound)
}

func TestCollectStats(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	w1 := mustCreate(t, r, word.Word{Term: "one", Meaning: "m"})
	mustCreate(t, r, word.Word{Term: "two", Meaning: "m", NextReview: testNow.Add(time.Hour)})

	_, err := r.RecordAnswer(ctx, w1.ID, srs.QualityPerfect)
	require.NoError(t, err)

	st, err := r.CollectStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.New)
	assert.Equal(t, 1, st.Learning)
	assert.Equal(t, 1, st.Trained)
	assert.Equal(t, 1, st.Correct)
}

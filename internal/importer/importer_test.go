package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lexi/internal/word"
)

// memStore collects created words in memory.
type memStore struct {
	words []word.Word
}

func (m *memStore) Create(_ context.Context, w *word.Word) error {
	m.words = append(m.words, *w)
	return nil
}

func (m *memStore) List(_ context.Context, _ *string) ([]word.Word, error) {
	return m.words, nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCSV(t *testing.T) {
	path := writeCSV(t, "term,meaning\nhola,hello\nadios,goodbye\n,missing term\n")
	store := &memStore{}

	res, err := Import(context.Background(), store, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.Len(t, res.Errors, 1)
	require.Len(t, store.words, 2)
	assert.Equal(t, "hola", store.words[0].Term)
	assert.Equal(t, "hello", store.words[0].Meaning)
}

func TestImportSkipsDuplicates(t *testing.T) {
	path := writeCSV(t, "term,meaning\nhola,hello\nHOLA,hi there\n")
	store := &memStore{}

	res, err := Import(context.Background(), store, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)
}

func TestImportSkipsExistingDeckTerms(t *testing.T) {
	path := writeCSV(t, "term,meaning\nhola,hello\n")
	store := &memStore{words: []word.Word{{Term: "hola", Meaning: "old"}}}

	res, err := Import(context.Background(), store, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Skipped)
}

func TestImportXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "term"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "meaning"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "bonjour"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "hello"))

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	store := &memStore{}
	res, err := Import(context.Background(), store, DefaultConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	require.Len(t, store.words, 1)
	assert.Equal(t, "bonjour", store.words[0].Term)
}

func TestImportUnsupportedExtension(t *testing.T) {
	_, err := Import(context.Background(), &memStore{}, DefaultConfig("words.json"))
	assert.Error(t, err)
}

// Package importer loads vocabulary from spreadsheet files into a deck.
// Supported formats: .xlsx (via excelize) and .csv.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lexi/internal/word"
)

// WordStore is the slice of the store the importer needs.
// *store.WordRepo satisfies it.
type WordStore interface {
	Create(ctx context.Context, w *word.Word) error
	List(ctx context.Context, deckID *string) ([]word.Word, error)
}

// Config describes where to find terms and meanings in the file.
type Config struct {
	Path       string
	Sheet      string // xlsx only
	TermCol    int    // 0-based column index
	MeaningCol int    // 0-based column index
	SkipHeader bool
	DeckID     *string
}

// DefaultConfig reads terms from the first column and meanings from the
// second, skipping a header row.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		Sheet:      "Sheet1",
		TermCol:    0,
		MeaningCol: 1,
		SkipHeader: true,
	}
}

// Result summarizes an import run.
type Result struct {
	Created int
	Skipped int
	Errors  []string
}

// Import reads the file and creates one word per usable row. Rows with an
// empty term or meaning are reported in Errors; rows whose term already
// exists in the target deck are skipped, not duplicated.
func Import(ctx context.Context, store WordStore, cfg Config) (*Result, error) {
	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}

	existing, err := existingTerms(ctx, store, cfg.DeckID)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	start := 0
	if cfg.SkipHeader && len(rows) > 0 {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		term := cell(row, cfg.TermCol)
		meaning := cell(row, cfg.MeaningCol)

		if term == "" || meaning == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: missing term or meaning", i+1))
			continue
		}

		key := strings.ToLower(term)
		if existing[key] {
			res.Skipped++
			continue
		}

		w := &word.Word{DeckID: cfg.DeckID, Term: term, Meaning: meaning}
		if err := store.Create(ctx, w); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		existing[key] = true
		res.Created++
	}

	return res, nil
}

func existingTerms(ctx context.Context, store WordStore, deckID *string) (map[string]bool, error) {
	words, err := store.List(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("list existing words: %w", err)
	}
	terms := make(map[string]bool, len(words))
	for _, w := range words {
		terms[strings.ToLower(w.Term)] = true
	}
	return terms, nil
}

func readRows(cfg Config) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".xlsx":
		return readXLSX(cfg.Path, cfg.Sheet)
	case ".csv":
		return readCSV(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(cfg.Path))
	}
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Package seed loads flashcards from TSV, CSV or XLSX files into a store.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/domino14/cardvault/internal/stores"
)

var ErrNoCards = errors.New("no flashcards found")

// ReadFile reads cards from path. The format follows the extension: .tsv
// (tab separated), .csv, or .xlsx (the named sheet, or the first one).
// Columns are question, answer and an optional card type.
func ReadFile(path, sheet string) ([]stores.NewFlashcard, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcel(path, sheet)
	case ".csv":
		return readDelimitedFile(path, ',')
	default:
		return readDelimitedFile(path, '\t')
	}
}

func readDelimitedFile(path string, comma rune) ([]stores.NewFlashcard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDelimited(f, comma)
}

// ParseDelimited reads delimited rows from r. A first row whose first two
// cells are "question" and "answer" is taken as a header.
func ParseDelimited(r io.Reader, comma rune) ([]stores.NewFlashcard, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return parseRows(rows)
}

func readExcel(path, sheet string) ([]stores.NewFlashcard, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]stores.NewFlashcard, error) {
	var cards []stores.NewFlashcard
	for i, row := range rows {
		cells := make([]string, 3)
		for j := 0; j < len(row) && j < 3; j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		if cells[0] == "" && cells[1] == "" {
			continue
		}
		if i == 0 && strings.EqualFold(cells[0], "question") && strings.EqualFold(cells[1], "answer") {
			continue
		}
		if cells[0] == "" || cells[1] == "" {
			return nil, fmt.Errorf("row %d: question and answer are both required", i+1)
		}
		cards = append(cards, stores.NewFlashcard{Question: cells[0], Answer: cells[1], Type: cells[2]})
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return cards, nil
}

type Options struct {
	OwnerID       string
	Name          string
	Collaborators []string
}

// Import creates a collection holding cards and shares it with the
// collaborators. Either all of it is written or none of it is.
func Import(ctx context.Context, store stores.ReviewStore, opts Options,
	cards []stores.NewFlashcard, now time.Time) (stores.Collection, error) {

	if opts.OwnerID == "" || opts.Name == "" {
		return stores.Collection{}, errors.New("owner and collection name are required")
	}
	var collaborators []string
	for _, u := range opts.Collaborators {
		if u = strings.TrimSpace(u); u != "" {
			collaborators = append(collaborators, u)
		}
	}
	c, added, err := store.ImportCollection(ctx, stores.CollectionSeed{
		OwnerID:       opts.OwnerID,
		Name:          opts.Name,
		Cards:         cards,
		Collaborators: collaborators,
	}, now)
	if err != nil {
		return stores.Collection{}, err
	}
	log.Ctx(ctx).Info().Str("collection", c.ID.String()).Str("name", c.Name).
		Int("cards", len(added)).Msg("collection-seeded")
	return c, nil
}

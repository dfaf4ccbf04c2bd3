package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"nba-matchup-lab/internal/domain"
)

// ReadPlayerRows loads normalized player rows from a headered CSV written by
// WritePlayerRows. Empty numeric cells come back as nil.
func ReadPlayerRows(path string) ([]domain.PlayerGameRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []domain.PlayerGameRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("read player rows %s: %w", path, err)
	}
	return rows, nil
}

// WritePlayerRows writes normalized player rows as a headered CSV keyed by
// the struct's csv tags. Nil stats render as empty cells.
func WritePlayerRows(path string, rows []domain.PlayerGameRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write player rows %s: %w", path, err)
	}
	return f.Close()
}

package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"nba-matchup-lab/internal/gamelog"
)

// ReadRawGameLog loads a headerless raw game log CSV. Columns map to RawRow
// fields positionally.
func ReadRawGameLog(path string) ([]gamelog.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []gamelog.RawRow{}
	if err := gocsv.UnmarshalWithoutHeaders(f, &rows); err != nil {
		return nil, fmt.Errorf("read raw game log %s: %w", path, err)
	}
	return rows, nil
}

// WriteRawGameLog writes rows as a headerless raw game log CSV in the same
// positional column order ReadRawGameLog expects.
func WriteRawGameLog(path string, rows []gamelog.RawRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalWithoutHeaders(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write raw game log %s: %w", path, err)
	}
	return f.Close()
}

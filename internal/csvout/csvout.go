package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRows indicates that there was nothing to write.
var ErrNoRows = errors.New("no rows to write")

// Write writes headers and rows to a CSV file at path, creating parent
// directories as needed.
func Write(path string, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// WriteRecords writes header-keyed records in the given header order.
// Headers missing from a record become empty cells.
func WriteRecords(path string, headers []string, records []map[string]string) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(headers))
		for i, header := range headers {
			row[i] = record[header]
		}
		rows = append(rows, row)
	}
	return Write(path, headers, rows)
}

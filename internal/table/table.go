package table

import "errors"

var (
	// ErrNotFound indicates that no table with the requested id exists on
	// the page, even after the comment-stripping fallback.
	ErrNotFound = errors.New("table not found")

	// ErrEmpty indicates that the table exists but contained no data rows
	// matching the header width.
	ErrEmpty = errors.New("table has no rows")
)

// Table holds one extracted statistics table. Every row has exactly
// len(Headers) cells; rows that did not line up with the header were
// dropped during extraction.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Records returns the rows as header-keyed maps, one per row.
func (t Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Headers))
		for i, header := range t.Headers {
			record[header] = row[i]
		}
		records = append(records, record)
	}
	return records
}

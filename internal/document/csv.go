package document

import (
	"encoding/csv"
	"io"
)

// decodeCSV returns the whole file as one document: a list of records, each
// a list of fields. Records may have differing field counts.
func decodeCSV(r io.Reader, comma rune) ([]any, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([]any, len(records))
	for i, rec := range records {
		rows[i] = rec
	}
	return []any{rows}, nil
}

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/footprint-map/internal/domain"
)

// requiredColumns is the fixed schema of a column-oriented source. The
// note column must be present but its values may be blank.
var requiredColumns = []string{"name", "latitude", "longitude", "color", "note", "timestamp"}

// ReadCSVFile opens a CSV source and reads its rows.
func ReadCSVFile(path string) ([]domain.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads a column-oriented source: a header row naming the required
// columns (in any order, any case) followed by one record per visit. A
// missing column yields a SchemaError naming it and listing what is
// available; an empty source yields ErrSourceUnavailable.
func ReadCSV(r io.Reader) ([]domain.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: source is empty", ErrSourceUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &SchemaError{Missing: col, Available: header}
		}
	}

	var rows []domain.RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		// Short records yield empty fields here; the importer turns a
		// missing coordinate into an ordinary row failure.
		field := func(col string) string {
			if i := index[col]; i < len(rec) {
				return rec[i]
			}
			return ""
		}

		rows = append(rows, domain.RawRow{
			Name:      field("name"),
			Latitude:  field("latitude"),
			Longitude: field("longitude"),
			Color:     field("color"),
			Note:      field("note"),
			Timestamp: field("timestamp"),
		})
	}

	return rows, nil
}

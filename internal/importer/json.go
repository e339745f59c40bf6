package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/couchcryptid/footprint-map/internal/domain"
)

// ReadJSONFile opens a JSON source and reads its rows.
func ReadJSONFile(path string) ([]domain.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ReadJSON(f)
}

// ReadJSON reads a record-oriented source: a JSON array of objects with the
// same logical fields as the CSV schema. Coordinates may be numbers or
// strings; absent fields become empty strings and surface as per-row
// failures (or defaults) in the importer.
func ReadJSON(r io.Reader) ([]domain.RawRow, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: source is empty", ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("decode source: %w", err)
	}

	rows := make([]domain.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, domain.RawRow{
			Name:      stringField(rec, "name"),
			Latitude:  stringField(rec, "latitude"),
			Longitude: stringField(rec, "longitude"),
			Color:     stringField(rec, "color"),
			Note:      stringField(rec, "note"),
			Timestamp: stringField(rec, "timestamp"),
		})
	}
	return rows, nil
}

func stringField(rec map[string]any, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

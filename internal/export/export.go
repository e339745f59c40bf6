// Package export writes session snapshots: an indented JSON document and a
// flat denormalized CSV, one row per visit.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/footprint-map/internal/domain"
)

// csvHeader is the column order of the CSV snapshot.
var csvHeader = []string{
	"name", "latitude", "longitude", "color", "note",
	"recorded_at", "visit_date", "visit_year", "visit_month",
	"display_date", "is_range", "original_timestamp",
}

// MakeOutputDir creates and returns the per-user timestamped output
// directory under base, e.g. "maps/alice_20240601_120000".
func MakeOutputDir(base, userName string, now time.Time) (string, error) {
	dir := filepath.Join(base, fmt.Sprintf("%s_%s", userName, now.Format("20060102_150405")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

// WriteJSON writes the visits as an indented JSON array.
func WriteJSON(path string, visits []domain.CityVisit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json snapshot: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(visits); err != nil {
		return fmt.Errorf("encode json snapshot: %w", err)
	}
	return f.Close()
}

// WriteCSV writes the visits as a flat CSV table with a header row.
func WriteCSV(path string, visits []domain.CityVisit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv snapshot: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, v := range visits {
		record := []string{
			v.Name,
			strconv.FormatFloat(v.Latitude, 'f', -1, 64),
			strconv.FormatFloat(v.Longitude, 'f', -1, 64),
			v.Color,
			v.Note,
			v.RecordedAt.Format("2006-01-02 15:04:05"),
			v.Visit.Date.Format("2006-01-02"),
			strconv.Itoa(v.Visit.Year),
			strconv.Itoa(v.Visit.Month),
			v.Visit.Display,
			strconv.FormatBool(v.Visit.IsRange),
			v.Visit.Original,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv snapshot: %w", err)
	}
	return f.Close()
}

// Package importer loads visit records in bulk from CSV and JSON sources.
//
// Each row is processed independently: a bad coordinate or validation error
// is recorded against its row number and the batch keeps going. Partial
// success is the expected outcome. Only source-level problems (an
// unreadable file, an empty source, a missing column) abort an import.
package importer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

// RowError records one skipped row: its 1-based row number and a
// human-readable reason.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Importer converts raw rows into CityVisit records, isolating failures
// per row.
type Importer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an Importer with the given observability.
func New(logger *slog.Logger, metrics *observability.Metrics) *Importer {
	return &Importer{logger: logger, metrics: metrics}
}

// ImportFile reads rows from a CSV or JSON file (selected by extension) and
// imports them. Source-level errors are returned; row-level failures are
// collected in the second return value.
func (im *Importer) ImportFile(path string) ([]domain.CityVisit, []RowError, error) {
	var (
		rows []domain.RawRow
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = ReadCSVFile(path)
	case ".json":
		rows, err = ReadJSONFile(path)
	default:
		return nil, nil, fmt.Errorf("unsupported source format %q (use .csv or .json)", ext)
	}
	if err != nil {
		return nil, nil, err
	}

	im.logger.Info("source loaded", "path", path, "rows", len(rows))
	visits, failures := im.ImportRows(rows)
	return visits, failures, nil
}

// ImportRows processes each row independently, returning the successful
// visits in row order and a failure entry for every skipped row.
func (im *Importer) ImportRows(rows []domain.RawRow) ([]domain.CityVisit, []RowError) {
	start := time.Now()

	visits := make([]domain.CityVisit, 0, len(rows))
	var failures []RowError

	for i, row := range rows {
		visit, err := im.importRow(row)
		if err != nil {
			im.logger.Warn("row import failed, skipping",
				"row", i+1,
				"name", row.Name,
				"error", err,
			)
			im.metrics.RowFailures.Inc()
			failures = append(failures, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}

		visits = append(visits, visit)
		im.metrics.RowsImported.Inc()
	}

	im.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	im.logger.Info("import finished",
		"imported", len(visits),
		"failed", len(failures),
		"duration", time.Since(start),
	)
	return visits, failures
}

func (im *Importer) importRow(row domain.RawRow) (domain.CityVisit, error) {
	lat, err := parseCoordinate("latitude", row.Latitude)
	if err != nil {
		return domain.CityVisit{}, err
	}
	lon, err := parseCoordinate("longitude", row.Longitude)
	if err != nil {
		return domain.CityVisit{}, err
	}

	// The normalizer is total: a blank or garbage timestamp yields an
	// estimated record instead of failing the row.
	vt := domain.NormalizeTimestamp(row.Timestamp)

	return domain.BuildCityVisit(row.Name, lat, lon, row.Color, row.Note, vt, im.logger)
}

func parseCoordinate(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", field)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: not a number", field, raw)
	}
	return v, nil
}

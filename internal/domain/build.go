package domain

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Year sanity bounds. Anything parsed below minVisitYear, or more than one
// year into the future, is treated as a corrupted timestamp and rewritten
// to the current year rather than producing an absurd map marker.
const minVisitYear = 1900

// BuildCityVisit assembles a CityVisit from validated parts. It returns a
// ValidationError when the name is blank or the coordinates are out of
// bounds; a bad color or an unreasonable year is recovered instead (logged,
// then coerced or clamped), matching the importer's keep-going posture.
func BuildCityVisit(name string, lat, lon float64, color, note string, vt VisitTime, logger *slog.Logger) (CityVisit, error) {
	if logger == nil {
		logger = slog.Default()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return CityVisit{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return CityVisit{}, &ValidationError{Field: "latitude", Reason: fmt.Sprintf("%v is outside [-90, 90]", lat)}
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return CityVisit{}, &ValidationError{Field: "longitude", Reason: fmt.Sprintf("%v is outside [-180, 180]", lon)}
	}

	normalized, ok := NormalizeColor(color)
	if !ok {
		logger.Warn("color not in palette, using default",
			"city", name,
			"color", color,
			"default", DefaultColor,
		)
	}

	vt = clampVisitYear(name, vt, logger)

	return CityVisit{
		Name:       name,
		Latitude:   lat,
		Longitude:  lon,
		Color:      normalized,
		Note:       strings.TrimSpace(note),
		Visit:      vt,
		RecordedAt: clock.Now(),
	}, nil
}

// NormalizeColor lower-cases and trims the candidate and reports whether it
// is a palette member. Non-members map to DefaultColor.
func NormalizeColor(candidate string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(candidate))
	for _, p := range Palette {
		if c == p {
			return c, true
		}
	}
	return DefaultColor, false
}

// clampVisitYear rewrites years outside [1900, current+1] to the current
// year. The discarded year is logged and remains visible in vt.Original.
func clampVisitYear(name string, vt VisitTime, logger *slog.Logger) VisitTime {
	currentYear := clock.Now().Year()
	if vt.Year >= minVisitYear && vt.Year <= currentYear+1 {
		return vt
	}

	logger.Warn("unreasonable visit year, adjusting to current year",
		"city", name,
		"year", vt.Year,
		"adjusted", currentYear,
		"original_timestamp", vt.Original,
	)

	vt.Date = vt.Date.AddDate(currentYear-vt.Year, 0, 0)
	vt.Year = currentYear
	vt.Display = fmt.Sprintf("%d (adjusted)", currentYear)
	return vt
}

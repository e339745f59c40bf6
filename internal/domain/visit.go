package domain

import "time"

// Palette is the fixed set of marker colors the map renderer supports
// (the Leaflet AwesomeMarkers color names).
var Palette = []string{
	"red", "blue", "green", "purple", "orange",
	"darkred", "lightred", "beige", "darkblue",
	"darkgreen", "cadetblue", "darkpurple",
	"white", "pink", "lightblue", "lightgreen",
}

// DefaultColor is substituted when an input color is not in the palette.
const DefaultColor = "blue"

// RawRow is one unit of input from a bulk import source. All fields are the
// raw strings from the source; the importer parses and validates them.
type RawRow struct {
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Color     string `json:"color"`
	Note      string `json:"note"`
	Timestamp string `json:"timestamp"`
}

// VisitTime is the normalized representation of when a place was visited.
// Values are produced by NormalizeTimestamp and never mutated afterward.
type VisitTime struct {
	// Date is the resolved calendar date-time, timezone-naive: for year and
	// range precision it is Jan 1 of the (start) year.
	Date time.Time `json:"visit_date"`

	// Year is always populated; the estimation fallback guarantees it.
	Year  int `json:"visit_year"`
	Month int `json:"visit_month"`

	// Display is the human-readable rendering at the parsed precision,
	// e.g. "2023", "May 2023", "May 15, 2023", "2020-2023".
	Display string `json:"display_date"`

	// IsRange is true only for explicit "YYYY-YYYY" inputs.
	IsRange bool `json:"is_range"`

	// Original preserves the raw input string for audit and debugging.
	Original string `json:"original_timestamp"`

	// Estimated is set when no parse strategy matched and the current time
	// was substituted.
	Estimated bool `json:"is_estimated,omitempty"`
}

// CityVisit is one recorded visit: a named location paired with a
// VisitTime, marker color, and optional note. Immutable once built.
type CityVisit struct {
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Color     string    `json:"color"`
	Note      string    `json:"note,omitempty"`
	Visit     VisitTime `json:"visit"`

	// RecordedAt is the wall-clock time the record was created, distinct
	// from the visit time itself.
	RecordedAt time.Time `json:"recorded_at"`
}

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/importer"
)

// printVisitsTable prints the session's visits as a formatted table.
func printVisitsTable(w io.Writer, visits []domain.CityVisit) {
	if len(visits) == 0 {
		fmt.Fprintln(w, "No cities marked yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCITY\tVISIT TIME\tLATITUDE\tLONGITUDE\tNOTE")
	fmt.Fprintln(tw, "--\t----\t----------\t--------\t---------\t----")

	for i, v := range visits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%.4f\t%s\n",
			i+1, truncate(v.Name, 20), truncate(v.Visit.Display, 15),
			v.Latitude, v.Longitude, truncate(v.Note, 15))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d cities\n", len(visits))
}

// printFailures prints one diagnostic line per skipped row.
func printFailures(w io.Writer, failures []importer.RowError) {
	for _, f := range failures {
		fmt.Fprintf(w, "  skipped %s\n", f)
	}
}

// printSummary prints the batch summary block.
func printSummary(w io.Writer, s domain.ImportSummary, failed int) {
	fmt.Fprintf(w, "Imported %d cities, %d failed.\n", s.Total, failed)
	if s.Total == 0 {
		return
	}
	fmt.Fprintf(w, "  Earliest year: %d\n", s.EarliestYear)
	fmt.Fprintf(w, "  Latest year:   %d\n", s.LatestYear)
	fmt.Fprintf(w, "  Time ranges:   %d\n", s.Ranges)
	fmt.Fprintf(w, "  Unique years:  %d\n", s.DistinctYears)
}

// printYearDistribution prints per-year visit counts in ascending year order.
func printYearDistribution(w io.Writer, sess *domain.Session) {
	counts, years := sess.YearCounts()
	if len(years) == 0 {
		return
	}

	fmt.Fprintln(w, "Visit year distribution:")
	for _, y := range years {
		fmt.Fprintf(w, "  %d: %d cities\n", y, counts[y])
	}
}

// truncate shortens s to max characters, counting runes so multi-byte
// names are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-2]) + ".."
}

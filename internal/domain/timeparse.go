package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	// yearRangeRe matches explicit year spans like "2020-2023" or "2020 - 2023".
	yearRangeRe = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{4})$`)

	// bareYearRe matches exactly four digits.
	bareYearRe = regexp.MustCompile(`^\d{4}$`)

	// epochRe matches a non-negative number with at most one decimal point.
	epochRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// maxEpochSeconds caps epoch parsing at the last second of year 9999;
// larger values fall through to the remaining strategies.
const maxEpochSeconds = 253402300799

const (
	displayFullDate  = "January 2, 2006"
	displayYearMonth = "January 2006"
)

// parseStrategy attempts one interpretation of a timestamp string. It
// returns false when the input does not match, never an error: the chain
// below short-circuits on the first strategy that succeeds.
type parseStrategy func(string) (VisitTime, bool)

// parseStrategies is tried in order. The order is load-bearing: a 4-digit
// string must be a year before it can be an ISO fragment, and any other
// all-numeric string must be tried as epoch seconds before the calendar
// layouts see it.
var parseStrategies = []parseStrategy{
	parseYearRange,
	parseBareYear,
	parseEpoch,
	parseCalendarLayouts,
	parseFuzzy,
}

// NormalizeTimestamp converts an arbitrary input string into a VisitTime.
// It never fails: when every strategy misses, the current clock time is
// substituted and the result is flagged Estimated so bulk imports are not
// aborted by one bad timestamp.
func NormalizeTimestamp(input string) VisitTime {
	s := strings.TrimSpace(input)

	for _, try := range parseStrategies {
		if vt, ok := try(s); ok {
			vt.Original = s
			return vt
		}
	}

	now := clock.Now()
	return VisitTime{
		Date:      now,
		Year:      now.Year(),
		Month:     int(now.Month()),
		Display:   now.Format(displayFullDate) + " (estimated)",
		Original:  s,
		Estimated: true,
	}
}

func parseYearRange(s string) (VisitTime, bool) {
	m := yearRangeRe.FindStringSubmatch(s)
	if m == nil {
		return VisitTime{}, false
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return VisitTime{
		Date:    time.Date(start, time.January, 1, 0, 0, 0, 0, time.Local),
		Year:    start,
		Month:   1,
		Display: m[1] + "-" + strconv.Itoa(end),
		IsRange: true,
	}, true
}

func parseBareYear(s string) (VisitTime, bool) {
	if !bareYearRe.MatchString(s) {
		return VisitTime{}, false
	}

	year, _ := strconv.Atoi(s)
	return VisitTime{
		Date:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local),
		Year:    year,
		Month:   1,
		Display: s,
	}, true
}

// parseEpoch interprets all-numeric input as Unix seconds, with an optional
// fractional part. Values past year 9999 are rejected so that garbage digit
// runs can still reach the later strategies.
func parseEpoch(s string) (VisitTime, bool) {
	if !epochRe.MatchString(s) {
		return VisitTime{}, false
	}

	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || seconds > maxEpochSeconds {
		return VisitTime{}, false
	}

	sec, frac := math.Modf(seconds)
	date := time.Unix(int64(sec), int64(frac*float64(time.Second)))
	return visitTimeFromDate(date, displayFullDate), true
}

// calendarLayouts is the ordered list of fixed formats. Day-first slash
// forms come before US month-first so "15/05/2023" resolves day-first; the
// reverse case is unambiguous because month 15 does not parse.
var calendarLayouts = []struct {
	layout    string
	yearMonth bool
}{
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02T15:04:05.999999999"},
	{layout: time.RFC3339},
	{layout: "2006-01-02 15:04:05"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02"},
	{layout: "2006/01/02 15:04:05"},
	{layout: "2006/01/02 15:04"},
	{layout: "2006/01/02"},
	{layout: "02/01/2006 15:04:05"},
	{layout: "02/01/2006 15:04"},
	{layout: "02/01/2006"},
	{layout: "01/02/2006 15:04:05"},
	{layout: "01/02/2006 15:04"},
	{layout: "01/02/2006"},
	{layout: "2006-01", yearMonth: true},
	{layout: "2006/01", yearMonth: true},
	{layout: "January 2, 2006"},
	{layout: "Jan 2, 2006"},
	{layout: "2 January 2006"},
	{layout: "2 Jan 2006"},
}

func parseCalendarLayouts(s string) (VisitTime, bool) {
	for _, c := range calendarLayouts {
		date, err := time.ParseInLocation(c.layout, s, time.Local)
		if err != nil {
			continue
		}

		display := displayFullDate
		if c.yearMonth {
			display = displayYearMonth
		}
		return visitTimeFromDate(date, display), true
	}
	return VisitTime{}, false
}

// parseFuzzy is the best-effort natural-language fallback for inputs the
// fixed layouts miss, e.g. "May 15th 2023" or "15 May 2023 10:30".
func parseFuzzy(s string) (VisitTime, bool) {
	if s == "" {
		return VisitTime{}, false
	}

	date, err := dateparse.ParseLocal(s)
	if err != nil {
		return VisitTime{}, false
	}
	return visitTimeFromDate(date, displayFullDate), true
}

// CurrentVisitTime returns a VisitTime for the current clock time at full
// date precision. Used by the interactive entry path's default choice.
func CurrentVisitTime() VisitTime {
	now := clock.Now()
	vt := visitTimeFromDate(now, displayFullDate)
	vt.Original = now.Format("2006-01-02T15:04:05")
	return vt
}

func visitTimeFromDate(date time.Time, displayLayout string) VisitTime {
	return VisitTime{
		Date:    date,
		Year:    date.Year(),
		Month:   int(date.Month()),
		Display: date.Format(displayLayout),
	}
}

// Package domain models personal travel footprint records: cities a user
// has visited, when, and how the visit should be displayed on the map.
//
// # Timestamp Conventions
//
// Visit timestamps arrive from CSV/JSON imports and interactive entry in
// wildly heterogeneous shapes. [NormalizeTimestamp] accepts, in precedence
// order:
//
//	Year range:      "2020-2023"              → Jan 1 of the start year, IsRange
//	Bare year:       "2023"                   → Jan 1 of that year
//	Unix epoch:      "1684146600"             → seconds since epoch, local time
//	ISO:             "2023-05-15T10:30:00"    (optional fractional seconds / zone)
//	Date-time:       "2023-05-15 10:30:00", "2023-05-15 10:30", "2023-05-15"
//	Slash forms:     "2023/05/15 ...", "15/05/2023 ...", "05/15/2023 ..."
//	                 (year-first, then day-first, then US month-first)
//	Year-month:      "2023-05", "2023/05"     → displayed as "May 2023"
//	Month names:     "May 15, 2023", "15 May 2023" (long and short forms)
//	Free text:       best-effort natural parse
//
// Precedence matters: a 4-digit string is a year before it is an ISO
// fragment, and any other all-numeric string is epoch seconds before it is
// tried against calendar layouts. When nothing matches, the current time is
// substituted and the record is flagged estimated. Normalization never
// fails, so one garbage timestamp cannot abort a bulk import.
//
// # Display Text
//
// Display precision follows what was actually parsed: bare years render as
// "2023", year-month as "May 2023", full dates as "May 15, 2023", ranges as
// "2020-2023". Estimated records carry an "(estimated)" suffix; records
// whose year failed the sanity bounds carry "(adjusted)".
//
// # Marker Colors
//
// Colors come from the fixed 16-entry Leaflet marker palette. Anything else
// is coerced to "blue" rather than rejected, since a bad color is cosmetic.
package domain

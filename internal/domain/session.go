package domain

import "sort"

// Session owns the ordered sequence of visits recorded in one program run.
// Insertion order is the display order until SortByYear is called. There is
// exactly one owner of the sequence at a time; Session is not safe for
// concurrent use and does not need to be.
type Session struct {
	UserName string
	visits   []CityVisit
}

// NewSession creates an empty session for the given user.
func NewSession(userName string) *Session {
	if userName == "" {
		userName = "Visitor"
	}
	return &Session{UserName: userName}
}

// Add appends a visit to the session.
func (s *Session) Add(v CityVisit) {
	s.visits = append(s.visits, v)
}

// Visits returns the recorded visits in order. The returned slice is the
// session's own; callers must not mutate it.
func (s *Session) Visits() []CityVisit {
	return s.visits
}

// Len reports the number of recorded visits.
func (s *Session) Len() int {
	return len(s.visits)
}

// SortByYear stably reorders the visits by visit year, preserving insertion
// order within a year.
func (s *Session) SortByYear() {
	sort.SliceStable(s.visits, func(i, j int) bool {
		return s.visits[i].Visit.Year < s.visits[j].Visit.Year
	})
}

// YearCounts returns the number of visits per year and the years in
// ascending order.
func (s *Session) YearCounts() (map[int]int, []int) {
	counts := make(map[int]int)
	for _, v := range s.visits {
		counts[v.Visit.Year]++
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	return counts, years
}

package domain

// ImportSummary aggregates year statistics over a batch of visits.
type ImportSummary struct {
	Total         int `json:"total"`
	EarliestYear  int `json:"earliest_year"`
	LatestYear    int `json:"latest_year"`
	Ranges        int `json:"ranges"`
	DistinctYears int `json:"distinct_years"`
}

// Summarize computes year statistics over the given visits. The zero
// summary is returned for an empty batch.
func Summarize(visits []CityVisit) ImportSummary {
	if len(visits) == 0 {
		return ImportSummary{}
	}

	s := ImportSummary{
		Total:        len(visits),
		EarliestYear: visits[0].Visit.Year,
		LatestYear:   visits[0].Visit.Year,
	}

	years := make(map[int]struct{}, len(visits))
	for _, v := range visits {
		year := v.Visit.Year
		if year < s.EarliestYear {
			s.EarliestYear = year
		}
		if year > s.LatestYear {
			s.LatestYear = year
		}
		if v.Visit.IsRange {
			s.Ranges++
		}
		years[year] = struct{}{}
	}
	s.DistinctYears = len(years)
	return s
}

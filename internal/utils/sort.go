package utils

import (
	"sort"
	"time"
)

// SortDates orders dates in place, ascending or descending, and returns the
// slice for chaining.
func SortDates(dates []time.Time, asc bool) []time.Time {
	sort.Slice(dates, func(i, j int) bool {
		if asc {
			return dates[i].Before(dates[j])
		}
		return dates[i].After(dates[j])
	})
	return dates
}

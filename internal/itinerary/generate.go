package itinerary

import "time"

// Generate expands a trip's date range into an empty day-by-day itinerary:
// one DayPlan per calendar day, day numbers 1..N with date k = start+(k-1)
// days. Deterministic for identical inputs; times of day are ignored.
//
// Callers use this only when no itinerary exists for the trip yet. An
// existing sequence is loaded verbatim instead, never merged with a fresh
// generation.
func Generate(start, end time.Time) ([]DayPlan, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	numDays := daysBetween(start, end) + 1
	days := make([]DayPlan, numDays)
	for i := range days {
		days[i] = DayPlan{
			DayNumber:  i + 1,
			Date:       start.AddDate(0, 0, i),
			Activities: []ActivityEntry{},
		}
	}
	return days, nil
}

// dateOnly strips the time-of-day and timezone so date arithmetic counts
// whole calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

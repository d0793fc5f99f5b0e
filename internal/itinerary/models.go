package itinerary

import (
	"fmt"
	"time"
)

// ActivityEntry is a catalog activity as it was at the moment it was added to
// a day. Name and Cost are copies, not references: later catalog edits do not
// change entries already on a plan.
type ActivityEntry struct {
	ActivityID string  `json:"activity_id"`
	Name       string  `json:"name"`
	Time       string  `json:"time"`
	Cost       float64 `json:"cost"`
	Notes      string  `json:"notes"`
}

// DayPlan is one calendar day of a trip's itinerary. Budget tracks the sum of
// activity costs as long as edits go through AddActivity/RemoveActivity; a
// direct budget edit is kept as-is until the next add or remove adjusts it.
type DayPlan struct {
	ID         string          `json:"id,omitempty"`
	TripID     string          `json:"trip_id,omitempty"`
	DayNumber  int             `json:"day_number"`
	Date       time.Time       `json:"date"`
	CityID     string          `json:"city_id"`
	CityName   string          `json:"city_name"`
	Activities []ActivityEntry `json:"activities"`
	Budget     float64         `json:"budget"`
	Notes      string          `json:"notes"`
}

// Validate reports whether a day satisfies the model invariants.
func Validate(day DayPlan) error {
	if day.DayNumber < 1 {
		return fmt.Errorf("%w: day_number %d", ErrInvalidDayPlan, day.DayNumber)
	}
	if day.Budget < 0 {
		return fmt.Errorf("%w: negative budget %v", ErrInvalidDayPlan, day.Budget)
	}
	for _, a := range day.Activities {
		if a.Cost < 0 {
			return fmt.Errorf("%w: negative activity cost %v", ErrInvalidDayPlan, a.Cost)
		}
	}
	return nil
}

// TotalBudget sums the daily budgets.
func TotalBudget(days []DayPlan) float64 {
	var total float64
	for _, d := range days {
		total += d.Budget
	}
	return total
}

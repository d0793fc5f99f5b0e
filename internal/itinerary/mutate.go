package itinerary

import (
	"time"

	"backend-wanderplan/internal/catalog"
)

// The mutation functions below are pure: they return a fresh slice and leave
// the input untouched, so a caller can keep prior states around for undo.

// CityLookup resolves a city id to its display name. A miss returns ok=false
// and leaves the cached city name empty; it is never an error.
type CityLookup func(cityID string) (name string, ok bool)

// SetCity assigns a city to one day and refreshes the denormalized city name
// through lookup. The cached name is only ever written here.
func SetCity(days []DayPlan, dayIndex int, cityID string, lookup CityLookup) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	out[dayIndex].CityID = cityID
	out[dayIndex].CityName = ""
	if lookup != nil {
		if name, ok := lookup(cityID); ok {
			out[dayIndex].CityName = name
		}
	}
	return out, nil
}

// SetBudget overwrites one day's budget. The manual value is authoritative
// until the next AddActivity/RemoveActivity adjusts it.
func SetBudget(days []DayPlan, dayIndex int, budget float64) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	out[dayIndex].Budget = budget
	return out, nil
}

func SetNotes(days []DayPlan, dayIndex int, notes string) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	out[dayIndex].Notes = notes
	return out, nil
}

// SetDate changes one day's date without touching its neighbours. This can
// break the one-day-apart spacing of a generated itinerary; that is the
// user's call and is not auto-corrected.
func SetDate(days []DayPlan, dayIndex int, date time.Time) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	out[dayIndex].Date = dateOnly(date)
	return out, nil
}

// AddActivity appends a snapshot of a catalog activity to one day and adds
// its cost to the day's running budget.
func AddActivity(days []DayPlan, dayIndex int, activity catalog.Activity) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	day := &out[dayIndex]

	entry := ActivityEntry{
		ActivityID: activity.ID,
		Name:       activity.Name,
		Time:       "",
		Cost:       activity.Cost,
		Notes:      "",
	}
	day.Activities = append(append([]ActivityEntry{}, day.Activities...), entry)
	day.Budget += entry.Cost
	return out, nil
}

// RemoveActivity drops the entry at activityIndex and subtracts its cost from
// the day's budget. If the budget was manually set below the activity total
// this can go negative; it is intentionally not clamped.
func RemoveActivity(days []DayPlan, dayIndex, activityIndex int) ([]DayPlan, error) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, ErrNoSuchDay
	}
	if activityIndex < 0 || activityIndex >= len(days[dayIndex].Activities) {
		return nil, ErrNoSuchDay
	}
	out := cloneDays(days)
	day := &out[dayIndex]

	removed := day.Activities[activityIndex]
	activities := make([]ActivityEntry, 0, len(day.Activities)-1)
	activities = append(activities, day.Activities[:activityIndex]...)
	activities = append(activities, day.Activities[activityIndex+1:]...)
	day.Activities = activities
	day.Budget -= removed.Cost
	return out, nil
}

// AppendDay adds an empty day after the last one, dated one calendar day
// later. For an empty sequence the supplied fallback date is used; it is the
// only clock input and is passed in so the function stays deterministic.
func AppendDay(days []DayPlan, today time.Time) []DayPlan {
	date := dateOnly(today)
	if len(days) > 0 {
		date = dateOnly(days[len(days)-1].Date).AddDate(0, 0, 1)
	}

	out := cloneDays(days)
	return append(out, DayPlan{
		DayNumber:  len(days) + 1,
		Date:       date,
		Activities: []ActivityEntry{},
	})
}

func cloneDays(days []DayPlan) []DayPlan {
	out := make([]DayPlan, len(days))
	copy(out, days)
	return out
}

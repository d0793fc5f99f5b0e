package dashboard

import (
	"fmt"
	"math"
	"sort"

	"backend-wanderplan/internal/catalog"
	"backend-wanderplan/internal/itinerary"
	"backend-wanderplan/internal/trip"
)

// Pure read-side aggregations. Each function takes a snapshot of records and
// returns a derived series; nothing is cached here, callers re-invoke on
// fresh snapshots.

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusHistogram counts trips per status in a fixed label order. Statuses
// outside the known set are not counted anywhere.
func StatusHistogram(trips []trip.Trip) []StatusCount {
	counts := map[string]int{}
	for _, t := range trips {
		counts[t.Status]++
	}
	return []StatusCount{
		{Status: trip.StatusPlanning, Count: counts[trip.StatusPlanning]},
		{Status: trip.StatusOngoing, Count: counts[trip.StatusOngoing]},
		{Status: trip.StatusCompleted, Count: counts[trip.StatusCompleted]},
	}
}

type CityCount struct {
	CityName  string `json:"city_name"`
	TripCount int    `json:"trip_count"`
}

// TopDestinations counts how often each resolvable city id appears across
// trips and returns the n most frequent names. City ids that do not resolve
// against the catalog are skipped. Ties keep first-encountered order.
func TopDestinations(trips []trip.Trip, cities []catalog.City, n int) []CityCount {
	nameByID := make(map[string]string, len(cities))
	for _, c := range cities {
		nameByID[c.ID] = c.Name
	}

	counts := map[string]int{}
	var order []string
	for _, t := range trips {
		for _, cityID := range t.Cities {
			name, ok := nameByID[cityID]
			if !ok {
				continue
			}
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	result := make([]CityCount, 0, len(order))
	for _, name := range order {
		result = append(result, CityCount{CityName: name, TripCount: counts[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TripCount > result[j].TripCount
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

type MonthCount struct {
	Month string `json:"month"`
	Trips int    `json:"trips"`
}

// MonthlyTripCounts buckets trips by creation month ("Jan 2006" labels,
// "Unknown" for trips without a creation date), keeping buckets in
// first-occurrence order and trimming to the last monthsKept entries.
//
// The trim is a suffix cut, not a rolling window, so callers must pass trips
// sorted by creation date ascending for the kept buckets to be the most
// recent ones.
func MonthlyTripCounts(trips []trip.Trip, monthsKept int) []MonthCount {
	counts := map[string]int{}
	var order []string
	for _, t := range trips {
		label := "Unknown"
		if !t.CreatedAt.IsZero() {
			label = t.CreatedAt.Format("Jan 2006")
		}
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	if len(order) > monthsKept {
		order = order[len(order)-monthsKept:]
	}
	result := make([]MonthCount, 0, len(order))
	for _, label := range order {
		result = append(result, MonthCount{Month: label, Trips: counts[label]})
	}
	return result
}

type DayBudget struct {
	Label  string  `json:"label"`
	Budget float64 `json:"budget"`
}

// BudgetByDay turns an itinerary into a "Day N" budget series in day order.
func BudgetByDay(days []itinerary.DayPlan) []DayBudget {
	series := make([]DayBudget, 0, len(days))
	for _, day := range days {
		series = append(series, DayBudget{
			Label:  fmt.Sprintf("Day %d", day.DayNumber),
			Budget: day.Budget,
		})
	}
	return series
}

type CostSummary struct {
	TotalBudget      float64 `json:"total_budget"`
	AverageDailyCost float64 `json:"average_daily_cost"`
	TotalActivities  int     `json:"total_activities"`
}

func DailyCostSummary(days []itinerary.DayPlan) CostSummary {
	summary := CostSummary{TotalBudget: itinerary.TotalBudget(days)}
	for _, day := range days {
		summary.TotalActivities += len(day.Activities)
	}
	if len(days) > 0 {
		summary.AverageDailyCost = math.Round(summary.TotalBudget / float64(len(days)))
	}
	return summary
}

// DestinationCount counts distinct non-empty city names in an itinerary.
func DestinationCount(days []itinerary.DayPlan) int {
	seen := map[string]struct{}{}
	for _, day := range days {
		if day.CityName == "" {
			continue
		}
		seen[day.CityName] = struct{}{}
	}
	return len(seen)
}

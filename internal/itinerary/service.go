package itinerary

import (
	"context"
	"encoding/json"
	"time"

	"backend-wanderplan/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// ListByTrip returns the persisted itinerary for a trip ordered by day
// number. An empty result means no itinerary has been saved yet.
func (s *Service) ListByTrip(ctx context.Context, tripID string) ([]DayPlan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, day_number, date, city_id, city_name, activities, budget, notes
		FROM itinerary_days WHERE trip_id=$1
		ORDER BY day_number
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DayPlan
	for rows.Next() {
		var day DayPlan
		var activities []byte
		if err := rows.Scan(&day.ID, &day.TripID, &day.DayNumber, &day.Date, &day.CityID, &day.CityName, &activities, &day.Budget, &day.Notes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(activities, &day.Activities); err != nil {
			return nil, err
		}
		if day.Activities == nil {
			day.Activities = []ActivityEntry{}
		}
		days = append(days, day)
	}
	return days, nil
}

// LoadOrGenerate returns the persisted itinerary when one exists, otherwise a
// fresh sequence generated from the trip's date range. The two paths are
// mutually exclusive: an existing itinerary is used verbatim and never merged
// with a new generation.
func (s *Service) LoadOrGenerate(ctx context.Context, tripID string) ([]DayPlan, error) {
	days, err := s.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		return days, nil
	}

	var start, end time.Time
	row := s.db.QueryRow(ctx, `SELECT start_date, end_date FROM trips WHERE id=$1`, tripID)
	if err := row.Scan(&start, &end); err != nil {
		return nil, err
	}
	return Generate(start, end)
}

// Save persists the in-memory itinerary with a replace-all strategy: delete
// every previously persisted day by id, recreate every current day under the
// trip, then overwrite the trip's total budget with the new sum.
//
// The three phases are not atomic and nothing is rolled back on failure; the
// returned SaveError carries the phase so the caller can surface a retry.
// Retrying with the same current/previous pair is safe because deleting an
// already-deleted id is a no-op.
func (s *Service) Save(ctx context.Context, tripID string, current, previous []DayPlan) error {
	for _, day := range current {
		if err := Validate(day); err != nil {
			return err
		}
	}

	for _, prev := range previous {
		if prev.ID == "" {
			continue
		}
		if _, err := s.db.Exec(ctx, `DELETE FROM itinerary_days WHERE id=$1`, prev.ID); err != nil {
			return &SaveError{Phase: "delete", Err: err}
		}
	}

	for _, day := range current {
		activities := day.Activities
		if activities == nil {
			activities = []ActivityEntry{}
		}
		payload, err := json.Marshal(activities)
		if err != nil {
			return &SaveError{Phase: "create", Err: err}
		}
		_, err = s.db.Exec(ctx, `
			INSERT INTO itinerary_days (id, trip_id, day_number, date, city_id, city_name, activities, budget, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`, uuid.NewString(), tripID, day.DayNumber, day.Date, day.CityID, day.CityName, payload, day.Budget, day.Notes)
		if err != nil {
			return &SaveError{Phase: "create", Err: err}
		}
	}

	_, err := s.db.Exec(ctx, `UPDATE trips SET total_budget=$2 WHERE id=$1`, tripID, TotalBudget(current))
	if err != nil {
		return &SaveError{Phase: "update", Err: err}
	}
	return nil
}

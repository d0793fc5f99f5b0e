package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"backend-wanderplan/internal/catalog"
	"backend-wanderplan/internal/db"
	"backend-wanderplan/internal/itinerary"
	"backend-wanderplan/internal/trip"

	"github.com/redis/go-redis/v9"
)

const (
	overviewCacheKey = "dashboard:overview"
	overviewCacheTTL = time.Minute
	topCitiesKept    = 5
	monthsKept       = 6
)

type Overview struct {
	TotalTrips      int           `json:"total_trips"`
	ActiveTrips     int           `json:"active_trips"`
	TotalUsers      int           `json:"total_users"`
	SharedTrips     int           `json:"shared_trips"`
	StatusBreakdown []StatusCount `json:"status_breakdown"`
	TopCities       []CityCount   `json:"top_cities"`
	MonthlyTrips    []MonthCount  `json:"monthly_trips"`
}

type TripSummary struct {
	Days             []DayBudget `json:"budget_by_day"`
	Summary          CostSummary `json:"summary"`
	DestinationCount int         `json:"destination_count"`
}

type Service struct {
	db    db.Querier
	redis *redis.Client
}

func NewService(db db.Querier, redisClient *redis.Client) *Service {
	return &Service{db: db, redis: redisClient}
}

// Overview assembles the admin dashboard numbers from fresh record
// snapshots. With Redis configured the result is cached briefly so repeated
// dashboard loads stay off Postgres.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, overviewCacheKey).Bytes(); err == nil {
			var cached Overview
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	trips, err := s.loadTrips(ctx)
	if err != nil {
		return Overview{}, err
	}
	cities, err := s.loadCities(ctx)
	if err != nil {
		return Overview{}, err
	}
	userCount, err := s.count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return Overview{}, err
	}
	postCount, err := s.count(ctx, `SELECT COUNT(*) FROM community_posts`)
	if err != nil {
		return Overview{}, err
	}

	active := 0
	for _, t := range trips {
		if t.Status == trip.StatusOngoing {
			active++
		}
	}

	overview := Overview{
		TotalTrips:      len(trips),
		ActiveTrips:     active,
		TotalUsers:      userCount,
		SharedTrips:     postCount,
		StatusBreakdown: StatusHistogram(trips),
		TopCities:       TopDestinations(trips, cities, topCitiesKept),
		MonthlyTrips:    MonthlyTripCounts(trips, monthsKept),
	}

	if s.redis != nil {
		if raw, err := json.Marshal(overview); err == nil {
			_ = s.redis.Set(ctx, overviewCacheKey, raw, overviewCacheTTL).Err()
		}
	}
	return overview, nil
}

// Summary derives the per-trip view aggregates (budget series, cost summary,
// destination count) from the persisted itinerary.
func (s *Service) Summary(ctx context.Context, tripID string) (TripSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT day_number, city_name, activities, budget
		FROM itinerary_days WHERE trip_id=$1
		ORDER BY day_number
	`, tripID)
	if err != nil {
		return TripSummary{}, err
	}
	defer rows.Close()

	var days []itinerary.DayPlan
	for rows.Next() {
		var day itinerary.DayPlan
		var activities []byte
		if err := rows.Scan(&day.DayNumber, &day.CityName, &activities, &day.Budget); err != nil {
			return TripSummary{}, err
		}
		if err := json.Unmarshal(activities, &day.Activities); err != nil {
			return TripSummary{}, err
		}
		days = append(days, day)
	}

	return TripSummary{
		Days:             BudgetByDay(days),
		Summary:          DailyCostSummary(days),
		DestinationCount: DestinationCount(days),
	}, nil
}

// loadTrips reads the slim trip projection the aggregations need, oldest
// first so MonthlyTripCounts trims to the most recent months.
func (s *Service) loadTrips(ctx context.Context) ([]trip.Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, status, cities, created_at FROM trips
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []trip.Trip
	for rows.Next() {
		var t trip.Trip
		if err := rows.Scan(&t.ID, &t.Status, &t.Cities, &t.CreatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (s *Service) loadCities(ctx context.Context) ([]catalog.City, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM cities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []catalog.City
	for rows.Next() {
		var c catalog.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func (s *Service) count(ctx context.Context, query string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, query).Scan(&n)
	return n, err
}

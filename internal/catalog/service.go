package catalog

import (
	"context"
	"fmt"
	"strings"

	"backend-wanderplan/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// ListCities returns the city catalog sorted by popularity, optionally
// narrowed to one region.
func (s *Service) ListCities(ctx context.Context, region string) ([]City, error) {
	q := `
		SELECT id, name, country, region, description, image_url, popularity
		FROM cities
		ORDER BY popularity DESC`
	var args []any
	if region != "" {
		q = `
		SELECT id, name, country, region, description, image_url, popularity
		FROM cities WHERE region=$1
		ORDER BY popularity DESC`
		args = append(args, region)
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Region, &c.Description, &c.ImageURL, &c.Popularity); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func (s *Service) GetCity(ctx context.Context, id string) (City, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, country, region, description, image_url, popularity
		FROM cities WHERE id=$1
	`, id)
	var c City
	if err := row.Scan(&c.ID, &c.Name, &c.Country, &c.Region, &c.Description, &c.ImageURL, &c.Popularity); err != nil {
		return City{}, err
	}
	return c, nil
}

// CityName resolves a city id to its name. A missing city is a soft miss:
// the second return is false and the name is empty, never an error.
func (s *Service) CityName(ctx context.Context, id string) (string, bool) {
	var name string
	err := s.db.QueryRow(ctx, `SELECT name FROM cities WHERE id=$1`, id).Scan(&name)
	if err != nil {
		return "", false
	}
	return name, true
}

// ListActivities returns the activity catalog sorted by cost descending,
// optionally narrowed by city and category.
func (s *Service) ListActivities(ctx context.Context, cityID, category string) ([]Activity, error) {
	q := `
		SELECT id, COALESCE(city_id,''), name, category, cost, duration_hours, description
		FROM activities`
	var args []any
	var where []string
	if cityID != "" {
		args = append(args, cityID)
		where = append(where, fmt.Sprintf("city_id=$%d", len(args)))
	}
	if category != "" {
		args = append(args, category)
		where = append(where, fmt.Sprintf("category=$%d", len(args)))
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY cost DESC"

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.CityID, &a.Name, &a.Category, &a.Cost, &a.DurationHours, &a.Description); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func (s *Service) GetActivity(ctx context.Context, id string) (Activity, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, COALESCE(city_id,''), name, category, cost, duration_hours, description
		FROM activities WHERE id=$1
	`, id)
	var a Activity
	if err := row.Scan(&a.ID, &a.CityID, &a.Name, &a.Category, &a.Cost, &a.DurationHours, &a.Description); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (s *Service) CreateCity(ctx context.Context, input City) (City, error) {
	input.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO cities (id, name, country, region, description, image_url, popularity)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, input.ID, input.Name, input.Country, input.Region, input.Description, input.ImageURL, input.Popularity)
	if err != nil {
		return City{}, err
	}
	return input, nil
}

func (s *Service) CreateActivity(ctx context.Context, input Activity) (Activity, error) {
	input.ID = uuid.NewString()
	// city_id references cities(id); an empty id must go in as NULL or the
	// foreign key rejects the row.
	var cityID *string
	if input.CityID != "" {
		cityID = &input.CityID
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO activities (id, city_id, name, category, cost, duration_hours, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, input.ID, cityID, input.Name, input.Category, input.Cost, input.DurationHours, input.Description)
	if err != nil {
		return Activity{}, err
	}
	return input, nil
}

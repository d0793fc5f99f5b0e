package trip

import (
	"context"
	"errors"

	"backend-wanderplan/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateTrip(ctx context.Context, input Trip) (Trip, error) {
	if input.Name == "" {
		return Trip{}, errors.New("name required")
	}
	if input.EndDate.Before(input.StartDate) {
		return Trip{}, errors.New("end_date before start_date")
	}
	input.ID = uuid.NewString()
	if input.Status == "" {
		input.Status = StatusPlanning
	}
	if input.Cities == nil {
		input.Cities = []string{}
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO trips (id, name, description, start_date, end_date, status, cover_image, is_public, total_budget, cities, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING created_at
	`, input.ID, input.Name, input.Description, input.StartDate, input.EndDate, input.Status, input.CoverImage, input.IsPublic, input.TotalBudget, input.Cities, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Trip{}, err
	}
	return input, nil
}

func (s *Service) GetTrip(ctx context.Context, id string) (Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, start_date, end_date, status, cover_image, is_public, total_budget, cities, created_by, created_at
		FROM trips WHERE id=$1
	`, id)
	return scanTrip(row)
}

// ListTrips returns trips newest first, optionally narrowed to one status.
func (s *Service) ListTrips(ctx context.Context, status string) ([]Trip, error) {
	q := `
		SELECT id, name, description, start_date, end_date, status, cover_image, is_public, total_budget, cities, created_by, created_at
		FROM trips
		ORDER BY created_at DESC`
	var args []any
	if status != "" {
		q = `
		SELECT id, name, description, start_date, end_date, status, cover_image, is_public, total_budget, cities, created_by, created_at
		FROM trips WHERE status=$1
		ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (s *Service) UpdateTrip(ctx context.Context, id string, patch Trip) (Trip, error) {
	trip, err := s.GetTrip(ctx, id)
	if err != nil {
		return Trip{}, err
	}
	if patch.Name != "" {
		trip.Name = patch.Name
	}
	if patch.Description != "" {
		trip.Description = patch.Description
	}
	if !patch.StartDate.IsZero() {
		trip.StartDate = patch.StartDate
	}
	if !patch.EndDate.IsZero() {
		trip.EndDate = patch.EndDate
	}
	if patch.Status != "" {
		trip.Status = patch.Status
	}
	if patch.CoverImage != "" {
		trip.CoverImage = patch.CoverImage
	}
	if patch.IsPublic {
		trip.IsPublic = true
	}
	if patch.Cities != nil {
		trip.Cities = patch.Cities
	}

	_, err = s.db.Exec(ctx, `
		UPDATE trips
		SET name=$2, description=$3, start_date=$4, end_date=$5, status=$6, cover_image=$7, is_public=$8, cities=$9
		WHERE id=$1
	`, trip.ID, trip.Name, trip.Description, trip.StartDate, trip.EndDate, trip.Status, trip.CoverImage, trip.IsPublic, trip.Cities)
	if err != nil {
		return Trip{}, err
	}
	return trip, nil
}

// DeleteTrip removes a trip; its itinerary days go with it via the foreign
// key cascade.
func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id=$1`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(row scanner) (Trip, error) {
	var t Trip
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Status, &t.CoverImage, &t.IsPublic, &t.TotalBudget, &t.Cities, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return Trip{}, err
	}
	if t.Cities == nil {
		t.Cities = []string{}
	}
	return t, nil
}

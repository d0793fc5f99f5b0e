package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

var dayColumns = []string{"id", "trip_id", "day_number", "date", "city_id", "city_name", "activities", "budget", "notes"}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestListByTrip(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	entries := []ActivityEntry{{ActivityID: "act-1", Name: "Hike", Cost: 20}}
	mock.ExpectQuery(`SELECT id, trip_id, day_number, date, city_id, city_name, activities, budget, notes`).
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows(dayColumns).
			AddRow("day-1", "trip-1", 1, date(2026, 5, 1), "city-1", "Kyoto", mustJSON(t, entries), 20.0, "").
			AddRow("day-2", "trip-1", 2, date(2026, 5, 2), "", "", []byte(`[]`), 0.0, "rest day"))

	svc := NewService(mock)
	days, err := svc.ListByTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Activities[0].Name != "Hike" || days[0].Budget != 20 {
		t.Fatalf("unexpected first day: %+v", days[0])
	}
	if len(days[1].Activities) != 0 || days[1].Notes != "rest day" {
		t.Fatalf("unexpected second day: %+v", days[1])
	}
}

func TestLoadOrGenerateExisting(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, trip_id, day_number`).
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows(dayColumns).
			AddRow("day-1", "trip-1", 1, date(2026, 5, 1), "", "", []byte(`[]`), 0.0, ""))

	svc := NewService(mock)
	days, err := svc.LoadOrGenerate(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(days) != 1 || days[0].ID != "day-1" {
		t.Fatalf("expected stored day, got %+v", days)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoadOrGenerateFresh(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, trip_id, day_number`).
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows(dayColumns))
	mock.ExpectQuery(`SELECT start_date, end_date FROM trips`).
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows([]string{"start_date", "end_date"}).
			AddRow(date(2026, 5, 1), date(2026, 5, 3)))

	svc := NewService(mock)
	days, err := svc.LoadOrGenerate(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 generated days, got %d", len(days))
	}
	if days[0].ID != "" {
		t.Fatalf("generated day should have no id")
	}
}

func TestSaveReplacesAll(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	previous := []DayPlan{
		{ID: "old-1", DayNumber: 1},
		{ID: "old-2", DayNumber: 2},
		{DayNumber: 3}, // never persisted, no delete issued
	}
	current := []DayPlan{
		{DayNumber: 1, Date: date(2026, 5, 1), Budget: 120, Activities: []ActivityEntry{{ActivityID: "act-1", Name: "Hike", Cost: 120}}},
		{DayNumber: 2, Date: date(2026, 5, 2), Budget: 30},
	}

	mock.ExpectExec(`DELETE FROM itinerary_days`).WithArgs("old-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM itinerary_days`).WithArgs("old-2").WillReturnResult(pgxmock.NewResult("DELETE", 1))

	mock.ExpectExec(`INSERT INTO itinerary_days`).
		WithArgs(pgxmock.AnyArg(), "trip-1", 1, date(2026, 5, 1), "", "", mustJSON(t, current[0].Activities), 120.0, "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO itinerary_days`).
		WithArgs(pgxmock.AnyArg(), "trip-1", 2, date(2026, 5, 2), "", "", []byte(`[]`), 30.0, "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	mock.ExpectExec(`UPDATE trips SET total_budget`).
		WithArgs("trip-1", 150.0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := NewService(mock)
	if err := svc.Save(context.Background(), "trip-1", current, previous); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveValidatesFirst(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	svc := NewService(mock)
	current := []DayPlan{{DayNumber: 1, Budget: -5}}
	err = svc.Save(context.Background(), "trip-1", current, nil)
	if !errors.Is(err, ErrInvalidDayPlan) {
		t.Fatalf("expected ErrInvalidDayPlan, got %v", err)
	}
	// no statement may run before validation
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected statements: %v", err)
	}
}

func TestSaveDeletePhaseError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	dbErr := errors.New("connection reset")
	mock.ExpectExec(`DELETE FROM itinerary_days`).WithArgs("old-1").WillReturnError(dbErr)

	svc := NewService(mock)
	err = svc.Save(context.Background(), "trip-1",
		[]DayPlan{{DayNumber: 1, Date: date(2026, 5, 1)}},
		[]DayPlan{{ID: "old-1", DayNumber: 1}})

	var saveErr *SaveError
	if !errors.As(err, &saveErr) || saveErr.Phase != "delete" {
		t.Fatalf("expected delete phase error, got %v", err)
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error")
	}
}

func TestSaveCreatePhaseError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	dbErr := errors.New("insert failed")
	mock.ExpectExec(`INSERT INTO itinerary_days`).
		WithArgs(pgxmock.AnyArg(), "trip-1", 1, date(2026, 5, 1), "", "", []byte(`[]`), 0.0, "").
		WillReturnError(dbErr)

	svc := NewService(mock)
	err = svc.Save(context.Background(), "trip-1",
		[]DayPlan{{DayNumber: 1, Date: date(2026, 5, 1)}}, nil)

	var saveErr *SaveError
	if !errors.As(err, &saveErr) || saveErr.Phase != "create" {
		t.Fatalf("expected create phase error, got %v", err)
	}
}

func TestSaveUpdatePhaseError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO itinerary_days`).
		WithArgs(pgxmock.AnyArg(), "trip-1", 1, date(2026, 5, 1), "", "", []byte(`[]`), 0.0, "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE trips SET total_budget`).
		WithArgs("trip-1", 0.0).
		WillReturnError(errors.New("update failed"))

	svc := NewService(mock)
	err = svc.Save(context.Background(), "trip-1",
		[]DayPlan{{DayNumber: 1, Date: date(2026, 5, 1)}}, nil)

	var saveErr *SaveError
	if !errors.As(err, &saveErr) || saveErr.Phase != "update" {
		t.Fatalf("expected update phase error, got %v", err)
	}
}

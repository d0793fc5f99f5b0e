package itinerary

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSingleDay(t *testing.T) {
	days, err := Generate(date(2026, 3, 10), date(2026, 3, 10))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].DayNumber != 1 || !days[0].Date.Equal(date(2026, 3, 10)) {
		t.Fatalf("unexpected day: %+v", days[0])
	}
	if days[0].Activities == nil || len(days[0].Activities) != 0 {
		t.Fatalf("expected empty activities slice")
	}
}

func TestGenerateRange(t *testing.T) {
	start := date(2026, 3, 10)
	end := date(2026, 3, 14)

	days, err := Generate(start, end)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	for i, day := range days {
		if day.DayNumber != i+1 {
			t.Fatalf("day %d has number %d", i, day.DayNumber)
		}
		if !day.Date.Equal(start.AddDate(0, 0, i)) {
			t.Fatalf("day %d has date %v", i, day.Date)
		}
		if day.Budget != 0 || day.CityID != "" || day.Notes != "" {
			t.Fatalf("day %d not empty: %+v", i, day)
		}
	}
}

func TestGenerateIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 1, 0, 0, time.UTC)

	days, err := Generate(start, end)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
}

func TestGenerateInvertedRange(t *testing.T) {
	_, err := Generate(date(2026, 3, 14), date(2026, 3, 10))
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(date(2026, 7, 1), date(2026, 7, 8))
	b, _ := Generate(date(2026, 7, 1), date(2026, 7, 8))
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		if a[i].DayNumber != b[i].DayNumber || !a[i].Date.Equal(b[i].Date) {
			t.Fatalf("day %d differs", i)
		}
	}
}

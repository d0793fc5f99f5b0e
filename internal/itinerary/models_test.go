package itinerary

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	good := DayPlan{DayNumber: 1, Budget: 10, Activities: []ActivityEntry{{Cost: 5}}}
	if err := Validate(good); err != nil {
		t.Fatalf("valid day rejected: %v", err)
	}

	cases := []DayPlan{
		{DayNumber: 0},
		{DayNumber: -2},
		{DayNumber: 1, Budget: -1},
		{DayNumber: 1, Activities: []ActivityEntry{{Cost: -5}}},
	}
	for i, day := range cases {
		if err := Validate(day); !errors.Is(err, ErrInvalidDayPlan) {
			t.Fatalf("case %d: expected ErrInvalidDayPlan, got %v", i, err)
		}
	}
}

func TestTotalBudget(t *testing.T) {
	days := []DayPlan{
		{DayNumber: 1, Budget: 100},
		{DayNumber: 2, Budget: 50.5},
		{DayNumber: 3},
	}
	if got := TotalBudget(days); got != 150.5 {
		t.Fatalf("total budget: %v", got)
	}
	if got := TotalBudget(nil); got != 0 {
		t.Fatalf("empty total: %v", got)
	}
}

func TestSaveErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &SaveError{Phase: "create", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("expected unwrap to inner error")
	}
	if err.Error() == "" {
		t.Fatalf("expected message")
	}
}

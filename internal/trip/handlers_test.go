package trip

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func withUser(c *fiber.Ctx) error {
	c.Locals("user_id", "user-1")
	return c.Next()
}

func newTestApp(mock pgxmock.PgxPoolIface) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/trips"), NewService(mock), withUser)
	return app
}

func TestCreateTripHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO trips`).
		WithArgs(pgxmock.AnyArg(), "Japan Spring", "", pgxmock.AnyArg(), pgxmock.AnyArg(), StatusPlanning, "", false, 0.0, []string{}, "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	body, _ := json.Marshal(Trip{Name: "Japan Spring", StartDate: time.Now(), EndDate: time.Now().Add(24 * time.Hour)})
	req := httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	app := newTestApp(mock)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status: %v %d", err, resp.StatusCode)
	}

	var created Trip
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.CreatedBy != "user-1" {
		t.Fatalf("expected creator from token, got %q", created.CreatedBy)
	}
}

func TestCreateTripHandlerRequiresName(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	req := httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	app := newTestApp(mock)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetTripHandlerNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM trips WHERE id=\$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	app := newTestApp(mock)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/trips/ghost", nil))
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListTripsHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM trips`).
		WillReturnRows(pgxmock.NewRows(tripColumns).
			AddRow("trip-1", "Japan Spring", "", date(2026, 5, 1), date(2026, 5, 10), StatusPlanning, "", false, 0.0, []string{}, "user-1", time.Now()))

	app := newTestApp(mock)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/trips/", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}
}

func TestDeleteTripHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM trips`).
		WithArgs("trip-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	app := newTestApp(mock)
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/trips/trip-1", nil))
	if err != nil || resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status: %v %d", err, resp.StatusCode)
	}
}

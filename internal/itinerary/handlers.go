package itinerary

import (
	"errors"
	"time"

	"backend-wanderplan/internal/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type saveRequest struct {
	Days []DayPlan `json:"days"`
}

type opRequest struct {
	Days          []DayPlan `json:"days"`
	Op            string    `json:"op"`
	DayIndex      int       `json:"day_index"`
	CityID        string    `json:"city_id"`
	ActivityID    string    `json:"activity_id"`
	ActivityIndex int       `json:"activity_index"`
	Budget        float64   `json:"budget"`
	Notes         string    `json:"notes"`
	Date          time.Time `json:"date"`
}

func RegisterRoutes(trips fiber.Router, svc *Service, catalogSvc *catalog.Service, authMiddleware fiber.Handler) {
	trips.Get("/:id/itinerary", func(c *fiber.Ctx) error {
		days, err := svc.LoadOrGenerate(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fiber.NewError(fiber.StatusNotFound, "trip not found")
			}
			if errors.Is(err, ErrInvalidDateRange) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"days": days, "total_budget": TotalBudget(days)})
	})

	trips.Put("/:id/itinerary", authMiddleware, func(c *fiber.Ctx) error {
		var req saveRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tripID := c.Params("id")
		previous, err := svc.ListByTrip(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		if err := svc.Save(c.Context(), tripID, req.Days, previous); err != nil {
			if errors.Is(err, ErrInvalidDayPlan) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"total_budget": TotalBudget(req.Days)})
	})

	// Edit operations on an in-flight (unsaved) itinerary. The client sends
	// the whole day sequence plus one operation and gets the updated
	// sequence back; nothing is persisted until the PUT above.
	trips.Post("/:id/itinerary/ops", authMiddleware, func(c *fiber.Ctx) error {
		var req opRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		days, err := applyOp(c, svc, catalogSvc, req)
		if err != nil {
			if errors.Is(err, ErrNoSuchDay) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return fiberErr
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"days": days, "total_budget": TotalBudget(days)})
	})

	trips.Get("/:id/itinerary/export", func(c *fiber.Ctx) error {
		tripID := c.Params("id")

		var tripName string
		if err := svc.db.QueryRow(c.Context(), `SELECT name FROM trips WHERE id=$1`, tripID).Scan(&tripName); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}

		days, err := svc.LoadOrGenerate(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		workbook, err := BuildWorkbook(tripName, days)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		buf, err := workbook.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="itinerary.xlsx"`)
		return c.Send(buf.Bytes())
	})
}

func applyOp(c *fiber.Ctx, svc *Service, catalogSvc *catalog.Service, req opRequest) ([]DayPlan, error) {
	switch req.Op {
	case "set_city":
		return SetCity(req.Days, req.DayIndex, req.CityID, func(cityID string) (string, bool) {
			return catalogSvc.CityName(c.Context(), cityID)
		})
	case "set_budget":
		return SetBudget(req.Days, req.DayIndex, req.Budget)
	case "set_notes":
		return SetNotes(req.Days, req.DayIndex, req.Notes)
	case "set_date":
		return SetDate(req.Days, req.DayIndex, req.Date)
	case "add_activity":
		activity, err := catalogSvc.GetActivity(c.Context(), req.ActivityID)
		if err != nil {
			// Unknown activity is a soft miss: the sequence is returned
			// unchanged rather than failing the edit session.
			return req.Days, nil
		}
		return AddActivity(req.Days, req.DayIndex, activity)
	case "remove_activity":
		return RemoveActivity(req.Days, req.DayIndex, req.ActivityIndex)
	case "append_day":
		return AppendDay(req.Days, time.Now()), nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown op "+req.Op)
	}
}

package dashboard

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(admin fiber.Router, trips fiber.Router, svc *Service, authMiddleware, adminMiddleware fiber.Handler) {
	admin.Get("/stats", authMiddleware, adminMiddleware, func(c *fiber.Ctx) error {
		overview, err := svc.Overview(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(overview)
	})

	trips.Get("/:id/summary", func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(summary)
	})
}

package catalog

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(cities fiber.Router, activities fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	cities.Get("/", func(c *fiber.Ctx) error {
		list, err := svc.ListCities(c.Context(), c.Query("region"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(list)
	})

	cities.Get("/:id", func(c *fiber.Ctx) error {
		city, err := svc.GetCity(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		}
		return c.JSON(city)
	})

	cities.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req City
		if err := c.BodyParser(&req); err != nil || req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		city, err := svc.CreateCity(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(city)
	})

	activities.Get("/", func(c *fiber.Ctx) error {
		list, err := svc.ListActivities(c.Context(), c.Query("city_id"), c.Query("category"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(list)
	})

	activities.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Activity
		if err := c.BodyParser(&req); err != nil || req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		activity, err := svc.CreateActivity(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(activity)
	})
}

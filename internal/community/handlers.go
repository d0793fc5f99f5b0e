package community

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, trips fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	trips.Post("/:id/publish", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "user required")
		}
		post, err := svc.Publish(c.Context(), c.Params("id"), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Get("/posts", func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.Context(), c.Query("tab"), c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(posts)
	})

	r.Post("/posts/:id/like", authMiddleware, func(c *fiber.Ctx) error {
		post, err := svc.Like(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return c.JSON(post)
	})
}

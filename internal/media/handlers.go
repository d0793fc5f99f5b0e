package media

import (
	"context"
	"strings"

	"backend-wanderplan/internal/db"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Service records uploaded media (trip covers, avatars, post photos) and
// hands back the public URL the frontend stores on the owning record.
type Service struct {
	db      db.Querier
	baseURL string
}

func NewService(db db.Querier, baseURL string) *Service {
	return &Service{db: db, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *Service) SaveObject(ctx context.Context, userID, url, kind string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO media_objects (id, user_id, url, kind)
		VALUES ($1,$2,$3,$4)
	`, id, userID, url, kind)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) objectURL(fileName string) string {
	return s.baseURL + "/" + fileName
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			FileName string `json:"file_name"`
			Kind     string `json:"kind"`
		}
		_ = c.BodyParser(&body)
		if body.FileName == "" {
			body.FileName = "upload"
		}
		if body.Kind == "" {
			body.Kind = "cover_image"
		}
		userID, _ := c.Locals("user_id").(string)
		url := svc.objectURL(body.FileName)
		id, err := svc.SaveObject(c.Context(), userID, url, body.Kind)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"id": id, "url": url})
	})
}

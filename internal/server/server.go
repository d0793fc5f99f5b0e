package server

import (
	"backend-wanderplan/internal/auth"
	"backend-wanderplan/internal/catalog"
	"backend-wanderplan/internal/community"
	"backend-wanderplan/internal/config"
	"backend-wanderplan/internal/dashboard"
	"backend-wanderplan/internal/itinerary"
	"backend-wanderplan/internal/media"
	"backend-wanderplan/internal/stream"
	"backend-wanderplan/internal/trip"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	adminOnly := auth.RequireRole("admin")

	catalogSvc := catalog.NewService(s.DB)
	trips := s.App.Group("/trips")

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB), jwtMiddleware)
	catalog.RegisterRoutes(s.App.Group("/cities"), s.App.Group("/activities"), catalogSvc, jwtMiddleware)
	trip.RegisterRoutes(trips, trip.NewService(s.DB), jwtMiddleware)
	itinerary.RegisterRoutes(trips, itinerary.NewService(s.DB), catalogSvc, jwtMiddleware)
	community.RegisterRoutes(s.App.Group("/community"), trips, community.NewService(s.DB, s.Stream), jwtMiddleware)
	dashboard.RegisterRoutes(s.App.Group("/admin"), trips, dashboard.NewService(s.DB, s.Redis), jwtMiddleware, adminOnly)
	media.RegisterRoutes(s.App.Group("/media"), media.NewService(s.DB, s.Cfg.MediaBaseURL), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

package routes

import (
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/config"
	"github.com/equipe-centaurus/achados-backend/internal/handlers"
	"github.com/equipe-centaurus/achados-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	itemHandler *handlers.ItemHandler,
	reportHandler *handlers.ReportHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public item routes
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/recent", itemHandler.Recent)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Anyone can flag a listing for review
	items.Post("/:id/reports", reportHandler.Create)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Moderation panel (JWT + admin)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/items", itemHandler.AdminList)
	admin.Delete("/items/:id", itemHandler.AdminDelete)
	admin.Get("/reports", reportHandler.ListPending)
	admin.Post("/reports/:id/resolve", reportHandler.Resolve)
}

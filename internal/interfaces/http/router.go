package http

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fotosvit/fotosvit-api/internal/application/auth"
	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/application/ingest"
	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
)

// RouterDeps залежності для роутера.
type RouterDeps struct {
	ServiceUC   *usecase.ServiceUseCase
	PortfolioUC *usecase.PortfolioUseCase
	OrderUC     *usecase.OrderUseCase
	IngestUC    *ingest.BulkIngestUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	PublicDir   string
	MaxFiles    int
	MaxFileSize int64
}

// Router реєструє маршрути API, статику фронтенду та SPA-fallback.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Загальний rate limit на API: 100 запитів за 15 хвилин з однієї IP.
	api.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Test successful", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// Публічний каталог
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	portfolioHandler := NewPortfolioHandler(deps.PortfolioUC, deps.IngestUC, deps.MaxFiles, deps.MaxFileSize)
	api.Get("/services", serviceHandler.List)
	api.Get("/portfolio", portfolioHandler.List)

	// Замовлення: окремий жорсткіший ліміт — 5 на годину з однієї IP.
	orderHandler := NewOrderHandler(deps.OrderUC, NewValidator())
	api.Post("/order", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Hour,
	}), orderHandler.Submit)

	// Адмін: логін публічний, решта за Bearer JWT.
	authHandler := NewAuthHandler(deps.AuthUC)
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	protected := admin.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Put("/services/:id", serviceHandler.UpdatePrice)
	protected.Post("/portfolio/bulk", portfolioHandler.BulkUpload)
	protected.Delete("/portfolio/:id", portfolioHandler.Delete)

	// Невідомі API-шляхи -> 404 JSON, а не index.html.
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "API endpoint not found"})
	})

	// Статика фронтенду (включно з /uploads) і чисті URL адмінки та галереї.
	app.Static("/", deps.PublicDir)
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(deps.PublicDir, "admin.html"))
	})
	app.Get("/portfolio", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(deps.PublicDir, "portfolio.html"))
	})

	// SPA-fallback: усе, що не знайдено і не /api, отримує index.html.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "API endpoint not found"})
		}
		return c.SendFile(filepath.Join(deps.PublicDir, "index.html"))
	})
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fotosvit/fotosvit-api/internal/application/auth"
	"github.com/fotosvit/fotosvit-api/internal/application/ingest"
	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
	infraimaging "github.com/fotosvit/fotosvit-api/internal/infrastructure/imaging"
	"github.com/fotosvit/fotosvit-api/internal/infrastructure/jsonstore"
	inframail "github.com/fotosvit/fotosvit-api/internal/infrastructure/mail"
	httpRouter "github.com/fotosvit/fotosvit-api/internal/interfaces/http"
	"github.com/fotosvit/fotosvit-api/pkg/config"
	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("завантаження конфігурації: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("запуск застосунку")

	store := jsonstore.NewStore(cfg.Storage.DataDir, log)
	if err := jsonstore.EnsureDefaults(store, cfg.Storage.DataDir, cfg.Storage.UploadsDir); err != nil {
		log.Fatal().Err(err).Msg("ініціалізація даних")
	}

	creds, err := jsonstore.NewFileCredentialStore(cfg.Storage.DataDir, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("сховище облікових даних адміністратора")
	}

	serviceRepo := jsonstore.NewServiceRepository(store)
	portfolioRepo := jsonstore.NewPortfolioRepository(store)

	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal().Err(err).Msg("генератор ідентифікаторів")
	}

	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	portfolioUC := usecase.NewPortfolioUseCase(portfolioRepo, cfg.Storage.UploadsDir, log)
	orderUC := usecase.NewOrderUseCase(inframail.NewSMTPMailer(cfg.SMTP), log)
	ingestUC := ingest.NewBulkIngestUseCase(portfolioRepo, infraimaging.NewJPEGNormalizer(), node, cfg.Storage.UploadsDir, log)
	authUC := auth.NewAuthUseCase(creds, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Батч: до 20 файлів по 50 МБ плюс запас на межі multipart.
		BodyLimit:    int(int64(cfg.Upload.MaxFiles)*cfg.Upload.MaxFileSizeBytes()) + 10*1024*1024,
		ReadTimeout:  time.Minute * 5,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	// CSP вимкнено: фронтенд тягне шрифти й іконки з CDN.
	app.Use(helmet.New(helmet.Config{ContentSecurityPolicy: ""}))

	// Swagger UI локально: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fotosvit API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceUC:   serviceUC,
		PortfolioUC: portfolioUC,
		OrderUC:     orderUC,
		IngestUC:    ingestUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		PublicDir:   cfg.HTTP.PublicDir,
		MaxFiles:    cfg.Upload.MaxFiles,
		MaxFileSize: cfg.Upload.MaxFileSizeBytes(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-сервер завершився")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("отримано сигнал зупинки, закриваємо сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("зупинка сервера")
	}

	log.Info().Msg("застосунок зупинено")
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"beatbazaar/authentication/controllers"
	"beatbazaar/authentication/routes"
	"beatbazaar/config"
	"beatbazaar/database"
	"beatbazaar/handlers"
	"beatbazaar/mailing"
	"beatbazaar/realtime"
	"beatbazaar/repositories"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appLog := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	appLog.Info("database connection successfully opened")

	ctx := context.Background()
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	appLog.Info("redis connection successfully opened")

	userStore := repositories.NewGormUserStore(db)
	albumStore := repositories.NewGormAlbumStore(db)
	reviewStore := repositories.NewGormReviewStore(db)

	albumCache := database.NewAlbumCache(rdb, albumStore, appLog)
	go albumCache.Run(ctx)

	mailer, err := mailing.NewSMTPMailer(cfg)
	if err != nil {
		log.Fatalf("Failed to build SMTP mailer: %v", err)
	}

	auth := controllers.NewAuthController(userStore, mailer, cfg, appLog)
	albums := handlers.NewAlbumHandler(albumStore, albumCache)
	reviews := handlers.NewReviewHandler(reviewStore, albumStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(appLog),
	})

	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 15 * time.Minute,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowCredentials: true,
	}))
	app.Use(fiberlog.New())
	app.Use(recover.New())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.CookieSecret,
	}))

	hub := realtime.NewHub(appLog)
	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", realtime.Handler(hub))

	routes.Setup(app, cfg.JWTSecret, auth, albums, reviews)

	appLog.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// errorHandler is the process-wide fallback: expected fiber errors keep
// their status, anything else is logged and answered with an opaque 500.
func errorHandler(appLog *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		appLog.Error("unhandled error", "path", c.Path(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong, please try again later",
		})
	}
}

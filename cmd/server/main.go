package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-downloader/docs"

	"video-downloader/internal/delivery/http/routers"
	"video-downloader/internal/pkg/config"
	"video-downloader/internal/usecases"
	"video-downloader/pkg/errors"
	"video-downloader/pkg/errors/i18n"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if err := i18n.Load("en"); err != nil {
		log.Fatalf("Hata mesajları yüklenemedi: %v", err)
	}

	// Recover middleware'in yakaladığı panic'ler dahil her hata aynı
	// {success, error} zarfıyla döner
	app := fiber.New(fiber.Config{
		ErrorHandler: errors.HandleError,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes
	routers.SetupAPIRoutes(app, cfg)
	routers.SetupStaticRoutes(app, cfg)

	// Yarım kalan job klasörlerini periyodik süpür
	cleanupService := usecases.NewCleanupService(cfg.Downloader.TempDir)
	c := cron.New()
	if _, err := c.AddFunc(cfg.Cleanup.Schedule, func() {
		if err := cleanupService.SweepStaleDirs(cfg.Cleanup.MaxAge); err != nil {
			log.Printf("Temp sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Cleanup schedule geçersiz: %v", err)
	}
	c.Start()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	c.Stop()

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}
	log.Println("Server düzgün bir şekilde kapatıldı")
}

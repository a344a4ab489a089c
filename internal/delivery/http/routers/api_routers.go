package routers

import (
	"video-downloader/internal/delivery/http/handlers"
	"video-downloader/internal/domain/dto"
	"video-downloader/internal/infrastructure/engine"
	"video-downloader/internal/pkg/config"
	"video-downloader/internal/usecases"
	consts "video-downloader/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

func SetupAPIRoutes(app *fiber.App, cfg *config.Config) {
	extractor := engine.NewYtdlpClient(cfg.Downloader.BinaryPath)

	formatService := usecases.NewFormatService(extractor)
	downloadService := usecases.NewDownloadService(extractor, cfg.Downloader.TempDir, cfg.Downloader.SocketTimeout)

	formatHandler := handlers.NewFormatHandler(formatService)
	downloadHandler := handlers.NewDownloadHandler(downloadService)

	api := app.Group("/api")
	api.Get("/get-formats", formatHandler.GetFormats)
	api.Get("/download", downloadHandler.Download)

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: consts.StatusHealthy})
	})
}

func SetupStaticRoutes(app *fiber.App, cfg *config.Config) {
	staticHandler := handlers.NewStaticHandler(cfg.Web.AssetsDir)

	app.Get("/", staticHandler.Index)
	app.Get("/app.js", staticHandler.AppJS)
	app.Get("/style.css", staticHandler.StyleCSS)
}

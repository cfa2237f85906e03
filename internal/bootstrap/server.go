package bootstrap

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mohammadpnp/contact-import/internal/config"
	httpecho "github.com/mohammadpnp/contact-import/internal/interfaces/http/echo"
	"github.com/mohammadpnp/contact-import/internal/logger"
	"go.uber.org/zap"
)

// multipartOverheadKB covers form boundaries and part headers on top of the raw file bytes.
const multipartOverheadKB = 1024

func NewHTTPServer(cfg config.ImportConfig, services Services, log *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(logger.NewEchoRequestLogger(log))
	server.Use(middleware.BodyLimit(bodyLimit(cfg)))

	importHandler := httpecho.NewImportHandler(services.ImportContacts, httpecho.UploadLimits{
		MaxFiles:     cfg.MaxFiles,
		MaxFileBytes: cfg.MaxFileBytes,
	})
	duplicateHandler := httpecho.NewDuplicateHandler(services.DetectDuplicates, services.RemoveDuplicates)
	runHandler := httpecho.NewImportRunHandler(services.GetImportRun, services.ListImportRuns)

	httpecho.RegisterRoutes(server, importHandler, duplicateHandler, runHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}

func bodyLimit(cfg config.ImportConfig) string {
	kb := int64(cfg.MaxFiles)*cfg.MaxFileBytes/1024 + multipartOverheadKB
	return fmt.Sprintf("%dK", kb)
}

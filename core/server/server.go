package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestion-api/core/config"
	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/core/middleware"
	"gestion-api/core/storage"
	"gestion-api/modules/auth"
	"gestion-api/modules/backup"
	"gestion-api/modules/client"
	"gestion-api/modules/document"
	"gestion-api/modules/gcalsync"
	"gestion-api/modules/indisponibilite"
	"gestion-api/modules/prestation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole application and blocks until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	format := "text"
	if cfg.LogJSON {
		format = "json"
	}
	logger.Init(cfg.LogLevel, format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(ctx); err != nil {
		cancel()
		return fmt.Errorf("migrate: %w", err)
	}
	cancel()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(cfg)

	auth.Init(e, &db, mw, cfg)
	client.Init(e, &db, mw)
	syncer := gcalsync.Init(e, &db, mw, cfg)
	prestation.Init(e, &db, mw, syncer)
	indisponibilite.Init(e, &db, mw, cfg)

	var backupWorker *backup.Worker
	store, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Warn("Object storage unavailable, documents and backups disabled", "error", err)
	} else {
		document.Init(e, &db, mw, store)
		backupWorker = backup.Init(e, &db, mw, cfg, store)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if backupWorker != nil {
		backupWorker.Shutdown()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return e.Shutdown(shutdownCtx)
}

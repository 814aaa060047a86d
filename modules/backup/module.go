package backup

import (
	"gestion-api/core/config"
	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/core/middleware"
	"gestion-api/core/storage"
	"gestion-api/modules/backup/controller"
	"gestion-api/modules/backup/repository"
	"gestion-api/modules/backup/router"
	"gestion-api/modules/backup/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the backup module: manual-trigger routes always, and the
// periodic worker when backups are enabled in configuration. Returns the
// worker (nil when disabled) so the server can stop it on shutdown.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config, store storage.ObjectStorage) *Worker {
	repo := repository.NewSauvegardeRepository(db)
	svc := service.NewBackupService(db, repo, store)
	ctrl := controller.NewBackupController(svc)
	rtr := router.NewBackupRouter(ctrl)
	rtr.Setup(e, mw)

	if !cfg.Backup.Enabled {
		return nil
	}

	worker := NewWorker(cfg, svc)
	if err := worker.Start(); err != nil {
		logger.Warn("Backup worker not started", "error", err)
		return nil
	}
	return worker
}

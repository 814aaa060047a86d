package indisponibilite

import (
	"gestion-api/core/config"
	"gestion-api/core/database"
	"gestion-api/core/middleware"
	"gestion-api/modules/gcalsync/calendar"
	gcalsyncrepository "gestion-api/modules/gcalsync/repository"
	"gestion-api/modules/indisponibilite/controller"
	"gestion-api/modules/indisponibilite/repository"
	"gestion-api/modules/indisponibilite/router"
	"gestion-api/modules/indisponibilite/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the indisponibilite module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config) {
	repo := repository.NewIndisponibiliteRepository(db)
	configRepo := gcalsyncrepository.NewConfigRepository(db)
	svc := service.NewIndisponibiliteService(repo, configRepo, calendar.NewGoogleFactory(cfg.Google))
	ctrl := controller.NewIndisponibiliteController(svc)
	rtr := router.NewIndisponibiliteRouter(ctrl)

	rtr.Setup(e, mw)
}

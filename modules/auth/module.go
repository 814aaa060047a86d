package auth

import (
	"context"

	"gestion-api/core/config"
	"gestion-api/core/database"
	"gestion-api/core/logger"
	"gestion-api/core/middleware"
	"gestion-api/modules/auth/controller"
	"gestion-api/modules/auth/repository"
	"gestion-api/modules/auth/router"
	"gestion-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module, registers routes and seeds the default
// admin account on a fresh database.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, cfg)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)

	if err := svc.EnsureDefaultAdmin(context.Background()); err != nil {
		logger.Warn("Default admin seeding failed", "error", err)
	}
}

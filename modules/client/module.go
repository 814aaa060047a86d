package client

import (
	"gestion-api/core/database"
	"gestion-api/core/middleware"
	"gestion-api/modules/client/controller"
	"gestion-api/modules/client/repository"
	"gestion-api/modules/client/router"
	"gestion-api/modules/client/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the client module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewClientRepository(db)
	svc := service.NewClientService(repo)
	ctrl := controller.NewClientController(svc)
	rtr := router.NewClientRouter(ctrl)

	rtr.Setup(e, mw)
}

package prestation

import (
	"gestion-api/core/database"
	"gestion-api/core/middleware"
	"gestion-api/modules/prestation/controller"
	"gestion-api/modules/prestation/repository"
	"gestion-api/modules/prestation/router"
	"gestion-api/modules/prestation/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the prestation module and registers routes. The syncer
// comes from the gcalsync module.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, syncer service.Syncer) {
	repo := repository.NewPrestationRepository(db)
	svc := service.NewPrestationService(repo, syncer)
	ctrl := controller.NewPrestationController(svc)
	rtr := router.NewPrestationRouter(ctrl)

	rtr.Setup(e, mw)
}

package gcalsync

import (
	"gestion-api/core/config"
	"gestion-api/core/database"
	"gestion-api/core/middleware"
	clientrepository "gestion-api/modules/client/repository"
	"gestion-api/modules/gcalsync/calendar"
	"gestion-api/modules/gcalsync/controller"
	"gestion-api/modules/gcalsync/repository"
	"gestion-api/modules/gcalsync/router"
	"gestion-api/modules/gcalsync/service"
	prestationrepository "gestion-api/modules/prestation/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar sync module and registers routes. The sync
// service is returned so the prestation module can sync after create/update
// and unsync before delete.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config) service.SyncServiceInterface {
	blocageRepo := repository.NewBlocageRepository(db)
	configRepo := repository.NewConfigRepository(db)
	prestationRepo := prestationrepository.NewPrestationRepository(db)
	clientRepo := clientrepository.NewClientRepository(db)

	blocageSvc := service.NewBlocageService(blocageRepo, cfg.Google.Timezone)
	syncSvc := service.NewSyncService(
		prestationRepo,
		clientRepo,
		configRepo,
		blocageSvc,
		calendar.NewGoogleFactory(cfg.Google),
		cfg.Google.Timezone,
	)

	ctrl := controller.NewGcalSyncController(syncSvc)
	rtr := router.NewGcalSyncRouter(ctrl)
	rtr.Setup(e, mw)

	return syncSvc
}

package document

import (
	"gestion-api/core/database"
	"gestion-api/core/middleware"
	"gestion-api/core/storage"
	"gestion-api/modules/document/controller"
	"gestion-api/modules/document/repository"
	"gestion-api/modules/document/router"
	"gestion-api/modules/document/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the document module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, store storage.ObjectStorage) {
	repo := repository.NewDocumentRepository(db)
	svc := service.NewDocumentService(repo, store)
	ctrl := controller.NewDocumentController(svc)
	rtr := router.NewDocumentRouter(ctrl)

	rtr.Setup(e, mw)
}

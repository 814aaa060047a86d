package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/document/controller"

	"github.com/labstack/echo/v4"
)

// DocumentRouter handles document routes
type DocumentRouter struct {
	DocumentController *controller.DocumentController
}

// NewDocumentRouter creates a new router
func NewDocumentRouter(documentController *controller.DocumentController) *DocumentRouter {
	return &DocumentRouter{
		DocumentController: documentController,
	}
}

// Setup registers document routes
func (r *DocumentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	prestationRoutes := privateRoutes.Group("/prestations", mw.AuthMiddleware())
	prestationRoutes.POST("/:id/documents", r.DocumentController.Upload)
	prestationRoutes.GET("/:id/documents", r.DocumentController.List)

	documentRoutes := privateRoutes.Group("/documents", mw.AuthMiddleware())
	documentRoutes.GET("/:id/download", r.DocumentController.Download)
	documentRoutes.DELETE("/:id", r.DocumentController.Delete)
}

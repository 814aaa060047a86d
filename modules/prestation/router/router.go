package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/prestation/controller"

	"github.com/labstack/echo/v4"
)

// PrestationRouter handles prestation routes
type PrestationRouter struct {
	PrestationController *controller.PrestationController
}

// NewPrestationRouter creates a new router
func NewPrestationRouter(prestationController *controller.PrestationController) *PrestationRouter {
	return &PrestationRouter{
		PrestationController: prestationController,
	}
}

// Setup registers prestation routes
func (r *PrestationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	prestationRoutes := privateRoutes.Group("/prestations", mw.AuthMiddleware())
	prestationRoutes.POST("", r.PrestationController.Create)
	prestationRoutes.GET("", r.PrestationController.List)
	prestationRoutes.GET("/:id", r.PrestationController.Get)
	prestationRoutes.PUT("/:id", r.PrestationController.Update)
	prestationRoutes.PATCH("/:id/statut", r.PrestationController.UpdateStatut)
	prestationRoutes.DELETE("/:id", r.PrestationController.Delete)

	clientRoutes := privateRoutes.Group("/clients", mw.AuthMiddleware())
	clientRoutes.GET("/:id/prestations", r.PrestationController.ListByClient)
}

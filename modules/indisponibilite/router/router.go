package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/indisponibilite/controller"

	"github.com/labstack/echo/v4"
)

// IndisponibiliteRouter handles unavailability routes
type IndisponibiliteRouter struct {
	IndisponibiliteController *controller.IndisponibiliteController
}

// NewIndisponibiliteRouter creates a new router
func NewIndisponibiliteRouter(indisponibiliteController *controller.IndisponibiliteController) *IndisponibiliteRouter {
	return &IndisponibiliteRouter{
		IndisponibiliteController: indisponibiliteController,
	}
}

// Setup registers unavailability routes
func (r *IndisponibiliteRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	indispoRoutes := privateRoutes.Group("/indisponibilites", mw.AuthMiddleware())
	indispoRoutes.POST("", r.IndisponibiliteController.Create)
	indispoRoutes.GET("", r.IndisponibiliteController.List)
	indispoRoutes.DELETE("/:id", r.IndisponibiliteController.Delete)
}

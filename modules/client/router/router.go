package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/client/controller"

	"github.com/labstack/echo/v4"
)

// ClientRouter handles client routes
type ClientRouter struct {
	ClientController *controller.ClientController
}

// NewClientRouter creates a new router
func NewClientRouter(clientController *controller.ClientController) *ClientRouter {
	return &ClientRouter{
		ClientController: clientController,
	}
}

// Setup registers client routes
func (r *ClientRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	clientRoutes := privateRoutes.Group("/clients", mw.AuthMiddleware())
	clientRoutes.POST("", r.ClientController.Create)
	clientRoutes.GET("", r.ClientController.List)
	clientRoutes.GET("/:id", r.ClientController.Get)
	clientRoutes.PUT("/:id", r.ClientController.Update)
	clientRoutes.POST("/:id/convert", r.ClientController.Convert)
	clientRoutes.DELETE("/:id", r.ClientController.Delete)
}

package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles authentication routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

// NewAuthRouter creates a new router
func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers authentication routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.POST("/auth/login", r.AuthController.Login)

	privateRoutes := v1.Group("/private")
	authRoutes := privateRoutes.Group("/auth", mw.AuthMiddleware())
	authRoutes.POST("/password", r.AuthController.ChangePassword)
}

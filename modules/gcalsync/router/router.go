package router

import (
	"gestion-api/core/middleware"
	"gestion-api/modules/gcalsync/controller"

	"github.com/labstack/echo/v4"
)

// GcalSyncRouter handles calendar sync routes
type GcalSyncRouter struct {
	GcalSyncController *controller.GcalSyncController
}

// NewGcalSyncRouter creates a new router
func NewGcalSyncRouter(gcalSyncController *controller.GcalSyncController) *GcalSyncRouter {
	return &GcalSyncRouter{
		GcalSyncController: gcalSyncController,
	}
}

// Setup registers calendar sync routes
func (r *GcalSyncRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	gcalRoutes := privateRoutes.Group("/gcal", mw.AuthMiddleware())

	gcalRoutes.GET("/calendars", r.GcalSyncController.ListCalendars)
	gcalRoutes.GET("/config", r.GcalSyncController.GetConfig)
	gcalRoutes.PUT("/config", r.GcalSyncController.SaveConfig)
	gcalRoutes.POST("/prestations/:id/sync", r.GcalSyncController.SyncPrestation)
	gcalRoutes.POST("/prestations/:id/unsync", r.GcalSyncController.UnsyncPrestation)
}

package controller

import (
	"gestion-api/core/controller"
	"gestion-api/core/errors"
	"gestion-api/modules/gcalsync/entity"
	"gestion-api/modules/gcalsync/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GcalSyncController handles Google Calendar sync HTTP requests
type GcalSyncController struct {
	controller.BaseController
	SyncService service.SyncServiceInterface
}

// NewGcalSyncController creates a new controller
func NewGcalSyncController(svc service.SyncServiceInterface) *GcalSyncController {
	return &GcalSyncController{
		BaseController: controller.NewBaseController(),
		SyncService:    svc,
	}
}

// ListCalendars handles GET /gcal/calendars
func (c *GcalSyncController) ListCalendars(ctx echo.Context) error {
	calendars, appErr := c.SyncService.ListCalendars(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, calendars, "Calendriers récupérés")
}

// GetConfig handles GET /gcal/config
func (c *GcalSyncController) GetConfig(ctx echo.Context) error {
	cfg, appErr := c.SyncService.GetConfig(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, cfg, "Configuration récupérée")
}

// SaveConfig handles PUT /gcal/config
func (c *GcalSyncController) SaveConfig(ctx echo.Context) error {
	var cfg entity.SyncConfig
	if err := ctx.Bind(&cfg); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	if appErr := c.SyncService.SaveConfig(ctx.Request().Context(), &cfg); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, cfg, "Configuration enregistrée")
}

// SyncPrestation handles POST /gcal/prestations/:id/sync
func (c *GcalSyncController) SyncPrestation(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant de prestation invalide")
	}

	result := c.SyncService.Sync(ctx.Request().Context(), id)
	if !result.Success {
		return c.ErrorResponse(ctx, errors.NewAppError(result.FailureCode, result.Message, nil))
	}
	return c.SuccessResponse(ctx, result, result.Message)
}

// UnsyncPrestation handles POST /gcal/prestations/:id/unsync
func (c *GcalSyncController) UnsyncPrestation(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant de prestation invalide")
	}

	result := c.SyncService.Unsync(ctx.Request().Context(), id)
	if !result.Success {
		return c.ErrorResponse(ctx, errors.NewAppError(result.FailureCode, result.Message, nil))
	}
	return c.SuccessResponse(ctx, result, result.Message)
}

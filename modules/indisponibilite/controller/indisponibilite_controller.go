package controller

import (
	"gestion-api/core/controller"
	"gestion-api/core/errors"
	"gestion-api/modules/indisponibilite/dto"
	"gestion-api/modules/indisponibilite/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IndisponibiliteController handles unavailability HTTP requests
type IndisponibiliteController struct {
	controller.BaseController
	IndisponibiliteService service.IndisponibiliteServiceInterface
}

// NewIndisponibiliteController creates a new controller
func NewIndisponibiliteController(svc service.IndisponibiliteServiceInterface) *IndisponibiliteController {
	return &IndisponibiliteController{
		BaseController:         controller.NewBaseController(),
		IndisponibiliteService: svc,
	}
}

// Create handles POST /indisponibilites
func (c *IndisponibiliteController) Create(ctx echo.Context) error {
	var req dto.IndisponibiliteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	result, appErr := c.IndisponibiliteService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Indisponibilité créée")
}

// List handles GET /indisponibilites
func (c *IndisponibiliteController) List(ctx echo.Context) error {
	indispos, appErr := c.IndisponibiliteService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, indispos, "Indisponibilités récupérées")
}

// Delete handles DELETE /indisponibilites/:id
func (c *IndisponibiliteController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	if appErr := c.IndisponibiliteService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Indisponibilité supprimée")
}

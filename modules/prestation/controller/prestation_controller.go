package controller

import (
	"gestion-api/core/controller"
	"gestion-api/core/errors"
	"gestion-api/modules/prestation/dto"
	"gestion-api/modules/prestation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PrestationController handles prestation HTTP requests
type PrestationController struct {
	controller.BaseController
	PrestationService service.PrestationServiceInterface
}

// NewPrestationController creates a new controller
func NewPrestationController(svc service.PrestationServiceInterface) *PrestationController {
	return &PrestationController{
		BaseController:    controller.NewBaseController(),
		PrestationService: svc,
	}
}

// Create handles POST /prestations
func (c *PrestationController) Create(ctx echo.Context) error {
	var req dto.CreatePrestationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	result, appErr := c.PrestationService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Prestation créée")
}

// Get handles GET /prestations/:id
func (c *PrestationController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	prestation, appErr := c.PrestationService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, prestation, "Prestation récupérée")
}

// List handles GET /prestations?statut=
func (c *PrestationController) List(ctx echo.Context) error {
	prestations, appErr := c.PrestationService.List(ctx.Request().Context(), ctx.QueryParam("statut"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, prestations, "Prestations récupérées")
}

// ListByClient handles GET /clients/:id/prestations
func (c *PrestationController) ListByClient(ctx echo.Context) error {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant de client invalide")
	}

	prestations, appErr := c.PrestationService.ListByClientID(ctx.Request().Context(), clientID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, prestations, "Prestations récupérées")
}

// Update handles PUT /prestations/:id
func (c *PrestationController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	var req dto.UpdatePrestationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	result, appErr := c.PrestationService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Prestation mise à jour")
}

// UpdateStatut handles PATCH /prestations/:id/statut
func (c *PrestationController) UpdateStatut(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	var req dto.StatutRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	result, appErr := c.PrestationService.UpdateStatut(ctx.Request().Context(), id, req.Statut)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Statut mis à jour")
}

// Delete handles DELETE /prestations/:id
func (c *PrestationController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	if appErr := c.PrestationService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Prestation supprimée")
}

package controller

import (
	"gestion-api/core/controller"
	"gestion-api/core/errors"
	"gestion-api/modules/client/dto"
	"gestion-api/modules/client/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientController handles client HTTP requests
type ClientController struct {
	controller.BaseController
	ClientService service.ClientServiceInterface
}

// NewClientController creates a new controller
func NewClientController(svc service.ClientServiceInterface) *ClientController {
	return &ClientController{
		BaseController: controller.NewBaseController(),
		ClientService:  svc,
	}
}

// Create handles POST /clients
func (c *ClientController) Create(ctx echo.Context) error {
	var req dto.ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	client, appErr := c.ClientService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client créé")
}

// Get handles GET /clients/:id
func (c *ClientController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	client, appErr := c.ClientService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client récupéré")
}

// List handles GET /clients?statut= and GET /clients?q=
func (c *ClientController) List(ctx echo.Context) error {
	if q := ctx.QueryParam("q"); q != "" {
		clients, appErr := c.ClientService.Search(ctx.Request().Context(), q)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, clients, "Clients récupérés")
	}

	clients, appErr := c.ClientService.List(ctx.Request().Context(), ctx.QueryParam("statut"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, clients, "Clients récupérés")
}

// Update handles PUT /clients/:id
func (c *ClientController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	var req dto.ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}

	client, appErr := c.ClientService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client mis à jour")
}

// Convert handles POST /clients/:id/convert
func (c *ClientController) Convert(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	client, appErr := c.ClientService.ConvertProspect(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Prospect converti en client")
}

// Delete handles DELETE /clients/:id
func (c *ClientController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	if appErr := c.ClientService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Client supprimé")
}

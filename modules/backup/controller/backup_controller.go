package controller

import (
	"strconv"

	"gestion-api/core/controller"
	"gestion-api/modules/backup/service"

	"github.com/labstack/echo/v4"
)

// BackupController handles backup HTTP requests
type BackupController struct {
	controller.BaseController
	BackupService service.BackupServiceInterface
}

// NewBackupController creates a new controller
func NewBackupController(svc service.BackupServiceInterface) *BackupController {
	return &BackupController{
		BaseController: controller.NewBaseController(),
		BackupService:  svc,
	}
}

// Run handles POST /sauvegardes — manual trigger
func (c *BackupController) Run(ctx echo.Context) error {
	sauvegarde, appErr := c.BackupService.Run(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, sauvegarde, "Sauvegarde effectuée")
}

// List handles GET /sauvegardes
func (c *BackupController) List(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	sauvegardes, appErr := c.BackupService.List(ctx.Request().Context(), limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, sauvegardes, "Sauvegardes récupérées")
}

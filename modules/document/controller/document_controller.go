package controller

import (
	"net/http"

	"gestion-api/core/controller"
	"gestion-api/core/errors"
	"gestion-api/modules/document/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DocumentController handles document HTTP requests
type DocumentController struct {
	controller.BaseController
	DocumentService service.DocumentServiceInterface
}

// NewDocumentController creates a new controller
func NewDocumentController(svc service.DocumentServiceInterface) *DocumentController {
	return &DocumentController{
		BaseController:  controller.NewBaseController(),
		DocumentService: svc,
	}
}

// Upload handles POST /prestations/:id/documents (multipart)
func (c *DocumentController) Upload(ctx echo.Context) error {
	prestationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant de prestation invalide")
	}

	fileHeader, err := ctx.FormFile("fichier")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Fichier manquant")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Lecture du fichier impossible")
	}
	defer file.Close()

	input := &service.UploadInput{
		PrestationID: prestationID,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Body:         file,
	}
	if v := ctx.FormValue("type_document"); v != "" {
		input.TypeDocument = &v
	}
	if v := ctx.FormValue("notes"); v != "" {
		input.Notes = &v
	}

	document, appErr := c.DocumentService.Upload(ctx.Request().Context(), input)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, document, "Document envoyé")
}

// List handles GET /prestations/:id/documents
func (c *DocumentController) List(ctx echo.Context) error {
	prestationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant de prestation invalide")
	}

	documents, appErr := c.DocumentService.ListByPrestationID(ctx.Request().Context(), prestationID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, documents, "Documents récupérés")
}

// Download handles GET /documents/:id/download
func (c *DocumentController) Download(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	document, body, appErr := c.DocumentService.Download(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	defer body.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+document.NomOriginal+`"`)
	return ctx.Stream(http.StatusOK, echo.MIMEOctetStream, body)
}

// Delete handles DELETE /documents/:id
func (c *DocumentController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Identifiant invalide")
	}

	if appErr := c.DocumentService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Document supprimé")
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	response "orcamentos_rtv/internal/adapter/http/dto/response"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg"
)

// FinanceEventHandler imports and lists rows of the finance sheet.
type FinanceEventHandler struct {
	usecase usecase.IFinanceEventUseCase
}

func NewFinanceEventHandler(uc usecase.IFinanceEventUseCase) *FinanceEventHandler {
	return &FinanceEventHandler{usecase: uc}
}

// ImportText godoc
// @Summary      Import finance rows pasted from the sheet
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body      request.ImportFinanceTextRequest  true  "Tab or semicolon separated rows"
// @Success      201   {object}  usecase.ImportResult
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /finance/events/import [post]
func (h *FinanceEventHandler) ImportText(c *gin.Context) {
	var payload request.ImportFinanceTextRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.ImportText(c.Request.Context(), payload.Text, middleware.UserEmail(c))
	if err != nil {
		respondError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ImportFile godoc
// @Summary      Import finance rows from an uploaded sheet
// @Description  Accepts .xlsx, .csv, .tsv and .txt. PDF statements are rejected.
// @Tags         finance
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Finance sheet"
// @Success      201   {object}  usecase.ImportResult
// @Failure      400   {object}  pkg.HTTPError
// @Failure      415   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /finance/events/upload [post]
func (h *FinanceEventHandler) ImportFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	defer f.Close()

	res, err := h.usecase.ImportFile(c.Request.Context(), header.Filename, f, middleware.UserEmail(c))
	if err != nil {
		respondError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *FinanceEventHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Query("client"))
	if err != nil {
		respondError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(events))
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImport):
		return pkg.NewDomainErrorSimple("EMPTY_IMPORT", "Nothing to import", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFinanceSheet):
		return pkg.NewDomainError("INVALID_FINANCE_SHEET", "The sheet could not be read", err, http.StatusBadRequest).WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrPDFImportNotSupported):
		return pkg.NewDomainErrorSimple("PDF_NOT_SUPPORTED", "PDF import is not supported, export the sheet as xlsx or paste it as text", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrUnsupportedImportFile):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILE", "Upload an .xlsx, .csv or .txt file", http.StatusUnsupportedMediaType)
	default:
		return internalError(err)
	}
}

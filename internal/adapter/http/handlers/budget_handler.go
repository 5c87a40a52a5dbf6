package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	response "orcamentos_rtv/internal/adapter/http/dto/response"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg"
)

// BudgetHandler handles budgets, their versions, totals and exports.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	locale  string
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, locale string) *BudgetHandler {
	return &BudgetHandler{usecase: uc, locale: locale}
}

// CreateBudget godoc
// @Summary      Create a draft budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBudgetRequest  true  "Budget"
// @Success      201   {object}  response.BudgetResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	budget, err := h.usecase.CreateBudget(c.Request.Context(), payload.ToInput(middleware.UserEmail(c)))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// ListBudgets godoc
// @Summary  List budgets
// @Tags     budgets
// @Produce  json
// @Param    client_id  query     string  false  "Client ID"
// @Param    status     query     string  false  "draft, sent_to_account or approved"
// @Success  200        {object}  response.ListResponse[response.BudgetResponse]
// @Security Bearer
// @Router   /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListBudgets(c.Request.Context(), interfaces.BudgetFilter{
		ClientID: c.Query("client_id"),
		Status:   entities.BudgetStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.MapList(budgets, response.FromBudget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// SetStatus godoc
// @Summary      Change a budget status
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Budget ID"
// @Param        body  body      request.SetBudgetStatusRequest  true  "Status"
// @Success      200   {object}  response.BudgetResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id}/status [patch]
func (h *BudgetHandler) SetStatus(c *gin.Context) {
	var payload request.SetBudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	budget, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.BudgetStatus(payload.Status))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// SaveVersion godoc
// @Summary      Append a new version of the budget form
// @Description  Every save, autosave included, creates a new immutable version.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Budget ID"
// @Param        body  body      request.SaveVersionRequest  true  "Form payload"
// @Success      201   {object}  response.TotalsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /budgets/{id}/versions [post]
func (h *BudgetHandler) SaveVersion(c *gin.Context) {
	var payload request.SaveVersionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in, err := payload.ToInput(c.Param("id"), middleware.UserEmail(c))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}

	totals, err := h.usecase.SaveVersion(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTotals(totals, h.locale))
}

func (h *BudgetHandler) ListVersions(c *gin.Context) {
	versions, err := h.usecase.ListVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.MapList(versions, response.FromVersionSummary))
}

func (h *BudgetHandler) LatestVersion(c *gin.Context) {
	version, err := h.usecase.LatestVersion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVersion(version))
}

// Totals godoc
// @Summary  Totals of the latest version with the client's current rates
// @Tags     budgets
// @Produce  json
// @Param    id   path      string  true  "Budget ID"
// @Success  200  {object}  response.TotalsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /budgets/{id}/totals [get]
func (h *BudgetHandler) Totals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals, h.locale))
}

// Export godoc
// @Summary  Download the latest version as PDF, CSV or XLSX
// @Tags     budgets
// @Produce  application/pdf,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id      path   string  true   "Budget ID"
// @Param    format  query  string  false  "pdf (default), csv or xlsx"
// @Success  200
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /budgets/{id}/export [get]
func (h *BudgetHandler) Export(c *gin.Context) {
	format := interfaces.ExportFormat(c.DefaultQuery("format", string(interfaces.ExportPDF)))

	file, err := h.usecase.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		respondError(c, mapBudgetError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidBudgetStatus), errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidBudgetType):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_TYPE", "Budget type must be film, audio, closed_caption or image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainError("INVALID_PAYLOAD", "Invalid budget payload", err, http.StatusBadRequest).WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrPayloadTypeMismatch):
		return pkg.NewDomainErrorSimple("PAYLOAD_TYPE_MISMATCH", "Payload type does not match the budget type", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Export format must be pdf, csv or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoVersions):
		return pkg.NewDomainErrorSimple("NO_VERSIONS", "Budget has no saved version", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductClientMismatch):
		return pkg.NewDomainErrorSimple("PRODUCT_CLIENT_MISMATCH", "Product does not belong to client", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Budget was saved concurrently, retry", http.StatusConflict)
	default:
		return internalError(err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/domain/rights"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg"
)

// RightsHandler serves usage-rights records and their expiration status.
type RightsHandler struct {
	usecase usecase.IRightsUseCase
}

func NewRightsHandler(uc usecase.IRightsUseCase) *RightsHandler {
	return &RightsHandler{usecase: uc}
}

// CreateRecord godoc
// @Summary      Register usage rights of a piece
// @Tags         rights
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateRightsRequest  true  "Rights record"
// @Success      201   {object}  usecase.RightsView
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /rights [post]
func (h *RightsHandler) CreateRecord(c *gin.Context) {
	var payload request.CreateRightsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}

	view, err := h.usecase.CreateRecord(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ListRecords godoc
// @Summary  List rights records with their derived status and KPI counts
// @Tags     rights
// @Produce  json
// @Param    client_id   query     string  false  "Client ID"
// @Param    product_id  query     string  false  "Product ID"
// @Param    status      query     string  false  "EXPIRED, EXPIRES_TODAY, EXPIRES_LE_15, EXPIRES_LE_30 or IN_USE"
// @Success  200         {object}  usecase.RightsList
// @Failure  400         {object}  pkg.HTTPError
// @Security Bearer
// @Router   /rights [get]
func (h *RightsHandler) ListRecords(c *gin.Context) {
	list, err := h.usecase.ListRecords(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *RightsHandler) KPIs(c *gin.Context) {
	kpi, err := h.usecase.KPIs(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, kpi)
}

func (h *RightsHandler) GetRecord(c *gin.Context) {
	view, err := h.usecase.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Renew godoc
// @Summary      Renew rights with a new expiration date
// @Description  Marks the record renewed and re-arms the 30/15/0-day notifications.
// @Tags         rights
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Rights record ID"
// @Param        body  body      request.RenewRightsRequest  true  "Renewal"
// @Success      200   {object}  usecase.RightsView
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /rights/{id}/renew [post]
func (h *RightsHandler) Renew(c *gin.Context) {
	var payload request.RenewRightsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in, err := payload.ToInput(c.Param("id"), middleware.UserEmail(c))
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}

	view, err := h.usecase.Renew(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RightsHandler) SetStatusLabel(c *gin.Context) {
	var payload request.SetRightsStatusLabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.SetStatusLabel(c.Request.Context(), c.Param("id"), payload.StatusLabel)
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// SweepNotifications runs the expiration sweep on demand; the
// rights-notifier binary runs the same sweep on a schedule.
func (h *RightsHandler) SweepNotifications(c *gin.Context) {
	res, err := h.usecase.SweepNotifications(c.Request.Context())
	if err != nil {
		respondError(c, mapRightsError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func listFilter(c *gin.Context) usecase.RightsListFilter {
	return usecase.RightsListFilter{
		ClientID:  c.Query("client_id"),
		ProductID: c.Query("product_id"),
		Status:    rights.Status(c.Query("status")),
	}
}

func mapRightsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRightsID), errors.Is(err, usecase.ErrInvalidRightsTitle), errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidRightsStatus):
		return pkg.NewDomainErrorSimple("INVALID_RIGHTS_STATUS", "Unknown rights status filter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExpireDate), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, use YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRightsNotFound):
		return pkg.NewDomainErrorSimple("RIGHTS_NOT_FOUND", "Rights record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductClientMismatch):
		return pkg.NewDomainErrorSimple("PRODUCT_CLIENT_MISMATCH", "Product does not belong to client", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotifierNotAvailable):
		return pkg.NewDomainErrorSimple("NOTIFIER_NOT_AVAILABLE", "Rights notifications are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSweepInProgress):
		return pkg.NewDomainErrorSimple("SWEEP_IN_PROGRESS", "A notification sweep is already running", http.StatusConflict)
	default:
		return internalError(err)
	}
}

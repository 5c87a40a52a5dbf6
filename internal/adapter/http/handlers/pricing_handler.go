package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	response "orcamentos_rtv/internal/adapter/http/dto/response"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg"
	"orcamentos_rtv/pkg/logger"
)

// PricingHandler prices payloads without persisting anything.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
	locale  string
	log     *logger.Logger
}

func NewPricingHandler(uc usecase.IPricingUseCase, locale string, log *logger.Logger) *PricingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PricingHandler{usecase: uc, locale: locale, log: log}
}

// Preview godoc
// @Summary      Price a payload with the client's rates
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.PreviewRequest  true  "Payload"
// @Success      200   {object}  response.PricedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /pricing/preview [post]
func (h *PricingHandler) Preview(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		respondError(c, mapPricingError(err))
		return
	}

	priced, err := h.usecase.Preview(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriced(priced, h.locale))
}

// SelectionTotal godoc
// @Summary      Sum the selected items of a supplier tree
// @Description  Ids not found in the tree are ignored for the total and returned in dangling_ids.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.SelectionTotalRequest  true  "Suppliers and selected item ids"
// @Success      200   {object}  response.SelectionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /pricing/selection [post]
func (h *PricingHandler) SelectionTotal(c *gin.Context) {
	var payload request.SelectionTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	sel := h.usecase.SelectionTotal(payload.Suppliers, payload.SelectedItemIDs)
	if len(sel.Dangling) > 0 {
		h.log.Warn(c.Request.Context(), "selection references unknown items", map[string]any{
			"dangling_ids": sel.Dangling,
		})
	}
	c.JSON(http.StatusOK, response.FromSelection(sel, h.locale))
}

// Rates returns the percentages a budget of the client would be priced with.
func (h *PricingHandler) Rates(c *gin.Context) {
	rates, src, err := h.usecase.ResolveRates(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		respondError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.RatesResponse{Rates: rates, RateSource: src})
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainError("INVALID_PAYLOAD", "Invalid budget payload", err, http.StatusBadRequest).WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrInvalidPercent):
		return pkg.NewDomainErrorSimple("INVALID_PERCENT", "Percentage must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

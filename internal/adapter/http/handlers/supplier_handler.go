package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	response "orcamentos_rtv/internal/adapter/http/dto/response"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg"
)

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	supplier, err := h.usecase.CreateSupplier(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.usecase.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(suppliers))
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierName), errors.Is(err, usecase.ErrInvalidSupplierCategory):
		return errInvalidRequest
	default:
		return internalError(err)
	}
}

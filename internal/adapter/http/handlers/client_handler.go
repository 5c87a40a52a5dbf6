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

// ClientHandler serves clients (anunciantes) and their products.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateClientRequest  true  "Client"
// @Success      201   {object}  entities.Client
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), payload.Name, payload.Document, payload.HonorarioPercent)
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Success  200  {object}  response.ListResponse[entities.Client]
// @Security Bearer
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateHonorario godoc
// @Summary      Set or clear the client's honorário percentage
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Client ID"
// @Param        body  body      request.UpdateHonorarioRequest  true  "Percentage, null to clear"
// @Success      200   {object}  entities.Client
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id}/honorario [patch]
func (h *ClientHandler) UpdateHonorario(c *gin.Context) {
	var payload request.UpdateHonorarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.UpdateHonorario(c.Request.Context(), c.Param("id"), payload.HonorarioPercent)
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), c.Param("id"), payload.Name)
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ClientHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(products))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidProductName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidPercent):
		return pkg.NewDomainErrorSimple("INVALID_PERCENT", "Percentage must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductClientMismatch):
		return pkg.NewDomainErrorSimple("PRODUCT_CLIENT_MISMATCH", "Product does not belong to client", http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg"
)

type MetadataHandler struct {
	usecase usecase.IMetadataUseCase
}

func NewMetadataHandler(uc usecase.IMetadataUseCase) *MetadataHandler {
	return &MetadataHandler{usecase: uc}
}

// Fetch godoc
// @Summary  Read provider, type, duration, resolution and licenses of a stock-media page
// @Tags     media
// @Produce  json
// @Param    url  query     string  true  "Page URL"
// @Success  200  {object}  entities.MediaMetadata
// @Failure  400  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /media/metadata [get]
func (h *MetadataHandler) Fetch(c *gin.Context) {
	meta, err := h.usecase.Fetch(c.Request.Context(), c.Query("url"))
	if err != nil {
		respondError(c, mapMetadataError(err))
		return
	}
	c.JSON(http.StatusOK, meta)
}

func mapMetadataError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMediaURL):
		return pkg.NewDomainErrorSimple("INVALID_MEDIA_URL", "Provide an http(s) page url", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrMetadataUnavailable):
		return pkg.NewDomainError("METADATA_UNAVAILABLE", "The media page could not be fetched", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}

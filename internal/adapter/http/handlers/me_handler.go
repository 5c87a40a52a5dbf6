package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "orcamentos_rtv/internal/adapter/http/dto/response"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/config"
)

// MeHandler tells the UI who is logged in, what they may do and which
// modules are enabled.
type MeHandler struct {
	features config.FeatureFlags
}

func NewMeHandler(features config.FeatureFlags) *MeHandler {
	return &MeHandler{features: features}
}

// Me godoc
// @Summary  Current user, role, capabilities and enabled modules
// @Tags     me
// @Produce  json
// @Success  200  {object}  response.MeResponse
// @Failure  401  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /me [get]
func (h *MeHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		respondError(c, errUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, response.MeResponse{
		Email:        p.Email,
		Name:         p.Name,
		Role:         p.Role,
		Capabilities: response.FromCapabilities(p.Capabilities),
		Features: map[string]bool{
			"finance_module":       h.features.FinanceModule,
			"rights_notifications": h.features.RightsNotifications,
			"media_metadata":       h.features.MediaMetadata,
		},
	})
}

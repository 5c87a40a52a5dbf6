package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"orcamentos_rtv/internal/config"
)

// CORS allows any origin in dev. Outside dev only the configured origins
// are allowed, and none when the list is empty.
func CORS(app config.AppConfig, cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderRequestID}
	c.ExposeHeaders = []string{"Content-Disposition", HeaderRequestID}
	c.MaxAge = 12 * time.Hour

	switch {
	case app.IsDev():
		c.AllowAllOrigins = true
	case len(cfg.AllowedOrigins) > 0:
		c.AllowOrigins = cfg.AllowedOrigins
		c.AllowCredentials = true
	default:
		c.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(c)
}

package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured browser origins. Requests from any other origin
// are rejected with 403.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cors.New(cfg)
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantGuard rejects requests without a business in context. It must run
// after AuthMiddleware or QueryTokenAuth.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := GetTenantID(c); err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "business context required"},
			})
			return
		}
		c.Next()
	}
}

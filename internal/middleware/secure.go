package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard security response headers. HTTPS redirects
// and HSTS are only enforced in production.
func SecureHeaders(production bool) gin.HandlerFunc {
	sm := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:         31536000,
		IsDevelopment:      !production,
	})
	return func(c *gin.Context) {
		if err := sm.Process(c.Writer, c.Request); err != nil {
			// Process has already written the redirect or error response.
			c.Abort()
			return
		}
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}
		c.Next()
	}
}

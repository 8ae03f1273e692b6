package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS applies the configured cross-origin policy and answers preflight requests.
// It must be installed on the engine so it also runs for unrouted OPTIONS requests.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.cors.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

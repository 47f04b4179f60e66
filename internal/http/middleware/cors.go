// README: Permissive CORS middleware for the browser frontend.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows any origin; the API carries no cookies or credentials.
// Preflight requests are answered with an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

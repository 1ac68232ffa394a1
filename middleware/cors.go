// cors.go - CORS middleware (API is intentionally open to any origin)

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware - Returns a Gin middleware that sets open CORS headers on
// every response and short-circuits OPTIONS preflight requests with 204.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,OPTIONS,DELETE")
		c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if c.Request.Method == http.MethodOptions { // CORS preflight
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

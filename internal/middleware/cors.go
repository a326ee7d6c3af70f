package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMethods are the methods browsers may use cross-origin.
var CORSMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
}

// CORS allows credentialed browser requests from a single origin.
// Preflight requests are answered with 204 No Content. Requests from any
// other origin are still served, just without CORS headers, leaving the
// browser to enforce the policy.
func CORS(origin string) gin.HandlerFunc {
	allowed := cors.New(cors.Config{
		AllowOrigins:              []string{origin},
		AllowMethods:              CORSMethods,
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials:          true,
		OptionsResponseStatusCode: http.StatusNoContent,
	})

	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")
		if requestOrigin == "" || requestOrigin == origin {
			allowed(c)
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/pkg/resp"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

// AuthMiddleware rejects requests without a valid bearer credential before
// any handler runs. The verifier is injected so tests can stub it out.
func AuthMiddleware(verify utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := verify(tokenStr)
		if err != nil {
			resp.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("customerId", claims.CustomerID)
		c.Set("customerName", claims.Name)
		c.Next()
	}
}

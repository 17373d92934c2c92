package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripchat/pkg/utils"
)

// SessionAuthMiddleware requires a bearer token issued for the session
// named by the :sessionId path parameter.
func SessionAuthMiddleware(issuer *utils.SessionTokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if claims.SessionID != c.Param("sessionId") {
			utils.RespondError(c, http.StatusForbidden, "Token does not grant access to this session")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}

package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "handoff-backend/internal/auth/domain"
	"handoff-backend/internal/auth/usecase"
)

// SessionKey is the gin context key holding the resolved session.
const SessionKey = "session"

// AuthMiddleware resolves the bearer token into a session. Only Confirmed
// sessions pass; a Placeholder is not trusted for authorization.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		session, err := authUsecase.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		if !session.Confirmed() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session could not be confirmed"})
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// SessionFrom extracts the resolved session stored by AuthMiddleware.
func SessionFrom(c *gin.Context) (*authdomain.ResolvedSession, bool) {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*authdomain.ResolvedSession)
	return session, ok
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/easylaptop/server/models"
	"github.com/easylaptop/server/services"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userId"
)

// AuthMiddleware creates a middleware that requires a valid bearer token.
// Requests with a missing, malformed, or expired token, or whose user no
// longer exists, are rejected with 401.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, auth)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a caller identity when a valid token is
// present but never rejects the request. Missing or invalid tokens simply
// leave the request anonymous.
func OptionalAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, auth); ok {
			c.Set(ContextUserKey, user)
			c.Set(ContextUserIDKey, user.ID)
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by the auth middlewares, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// resolveUser extracts and verifies the bearer token and loads its user.
func resolveUser(c *gin.Context, auth *services.AuthService) (*models.User, bool) {
	token := extractBearerToken(c)
	if token == "" {
		return nil, false
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, false
	}

	user, err := auth.GetUser(claims.UserID)
	if err != nil {
		return nil, false
	}

	return user, true
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

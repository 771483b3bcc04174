package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/models"
	"snipr-be/internal/service"
)

// IdentityKey is the gin context key the authenticated identity is
// stored under.
const IdentityKey = "identity"

// AuthMiddleware guards routes with bearer-token authentication. The
// token is validated and the user re-fetched from the store on every
// request, so stale tokens for removed users are rejected.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or malformed Authorization header",
			})
			return
		}

		identity, err := authService.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware,
// or nil if the request was not authenticated.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

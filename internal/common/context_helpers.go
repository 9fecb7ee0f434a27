// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"quotes_backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// GetTokenFromContext retrieves the bearer token string from the
// Authorization header. Returns an empty string if not found.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetFirebaseUIDFromContext retrieves the Firebase UID from the Gin context.
func GetFirebaseUIDFromContext(c *gin.Context) string {
	val, exists := c.Get(FirebaseUIDKey)
	if !exists {
		return ""
	}
	uid, ok := val.(string)
	if !ok {
		return ""
	}
	return uid
}

// GetPrincipalFromContext retrieves the authenticated principal from the Gin context.
func GetPrincipalFromContext(c *gin.Context) *shared.Principal {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := val.(*shared.Principal)
	if !ok {
		return nil
	}
	return principal
}

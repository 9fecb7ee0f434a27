// File: internal/middleware/auth.go
package middleware

import (
	"strings"

	"quotes_backend/internal/common"
	"quotes_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware that authenticates requests with a
// Firebase ID token. Every protected handler runs behind it; requests without
// a verified principal never reach the data store.
func AuthMiddleware(verifier shared.TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(common.AuthorizationHeader)
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			// c.Abort() is handled by RespondWithError's AbortWithStatusJSON
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], common.AuthorizationTypeBearer) {
			logger.Debug("Authorization header format invalid", zap.String("header", authHeader))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		principal, err := verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired token"))
			return
		}

		// Set principal information in context for downstream handlers
		c.Set(common.FirebaseUIDKey, principal.UID)
		c.Set(common.PrincipalKey, principal)

		logger.Debug("Request authenticated successfully", zap.String("uid", principal.UID))

		c.Next()
	}
}

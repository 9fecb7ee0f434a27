// File: internal/profile/handler.go
package profile

import (
	"net/http"

	"quotes_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for profile handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new profile handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	profileGroup := router.Group("/profile", authMW)
	{
		profileGroup.GET("/", h.getProfile)
	}
}

func (h *Handler) getProfile(c *gin.Context) {
	principal := common.GetPrincipalFromContext(c)
	if principal == nil {
		// Only reachable if the route was registered without the auth middleware.
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	profileModel, _, err := h.service.GetOrCreateProfile(c.Request.Context(), principal)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToProfileResponse(profileModel))
}

// File: internal/quote/handler.go
package quote

import (
	"errors"
	"net/http"

	"quotes_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for quote handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new quote handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for quote operations. All routes require
// an authenticated principal.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	quoteGroup := router.Group("/quotes", authMW)
	{
		quoteGroup.GET("/random/", h.getRandomQuote)
		quoteGroup.GET("/liked/", h.getLikedQuotes)
		quoteGroup.POST("/:quote_id/like/", h.likeQuote)
		quoteGroup.DELETE("/:quote_id/like/", h.unlikeQuote)
	}
}

func (h *Handler) getRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoQuotes) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No quotes available"})
			return
		}
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToQuoteResponse(quote))
}

func (h *Handler) likeQuote(c *gin.Context) {
	quoteID, ok := h.bindQuoteID(c)
	if !ok {
		return
	}

	created, err := h.service.LikeQuote(c.Request.Context(), common.GetFirebaseUIDFromContext(c), quoteID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"status": "liked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "already_liked"})
}

func (h *Handler) unlikeQuote(c *gin.Context) {
	quoteID, ok := h.bindQuoteID(c)
	if !ok {
		return
	}

	removed, err := h.service.UnlikeQuote(c.Request.Context(), common.GetFirebaseUIDFromContext(c), quoteID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"status": "unliked"})
		return
	}
	// Missing like rows deliberately answer 200, not 404 (see DESIGN.md).
	c.JSON(http.StatusOK, gin.H{"status": "not found"})
}

func (h *Handler) getLikedQuotes(c *gin.Context) {
	likes, err := h.service.GetLikedQuotes(c.Request.Context(), common.GetFirebaseUIDFromContext(c))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]LikedQuoteResponse, len(likes))
	for i := range likes {
		responses[i] = ToLikedQuoteResponse(&likes[i])
	}
	c.JSON(http.StatusOK, responses)
}

// bindQuoteID parses and validates the quote_id path parameter. On failure it
// writes the error response and reports false.
func (h *Handler) bindQuoteID(c *gin.Context) (uint, bool) {
	var uri LikeQuoteURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.logger.Warn("Invalid quote ID in path", zap.Error(err), zap.String("quote_id", c.Param("quote_id")))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return 0, false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid quote ID format."))
		return 0, false
	}
	return uri.QuoteID, true
}

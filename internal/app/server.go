// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quotes_backend/internal/config"
	"quotes_backend/internal/middleware"
	"quotes_backend/internal/profile"
	"quotes_backend/internal/quote"
	"quotes_backend/internal/shared"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	quoteHandler   *quote.Handler
	profileHandler *profile.Handler

	// Middleware instances
	authMW gin.HandlerFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	quoteHandler *quote.Handler,
	profileHandler *profile.Handler,
	db *gorm.DB,
	verifier shared.TokenVerifier,
) (*Server, error) {
	if err := db.AutoMigrate(&quote.Quote{}, &quote.LikedQuote{}, &profile.Profile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(verifier, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Quotes API is healthy!"})
	})

	api := router.Group("/api")
	quoteHandler.RegisterRoutes(api, authMW)
	profileHandler.RegisterRoutes(api, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:     httpServer,
		router:         router,
		cfg:            cfg,
		logger:         logger,
		quoteHandler:   quoteHandler,
		profileHandler: profileHandler,
		authMW:         authMW,
	}, nil
}

// Router exposes the underlying gin engine, mainly for tests that drive the
// server through httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	return s.httpServer.Shutdown(ctx)
}

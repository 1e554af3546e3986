// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"satoru/config"
	"satoru/internal/delivery/api/middleware"
	"satoru/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead leaves room for form boundaries and the title field.
const multipartOverhead = 1 << 20

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	DocumentHandler *handler.DocumentHandler
	RealtimeHandler *handler.RealtimeHandler
	UpdateHandler   *handler.UpdateHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	documentHandler *handler.DocumentHandler
	realtimeHandler *handler.RealtimeHandler
	updateHandler   *handler.UpdateHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		documentHandler: params.DocumentHandler,
		realtimeHandler: params.RealtimeHandler,
		updateHandler:   params.UpdateHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	jsonLimit := echomiddleware.BodyLimit(r.config.HTTP.MaxRequestBodySize)
	uploadLimit := echomiddleware.BodyLimit(strconv.FormatInt(r.documentHandler.MaxUploadSize()+multipartOverhead, 10)+"B")

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Realtime document updates
	e.GET("/ws/documents/", r.realtimeHandler.Subscribe)

	// Pub/Sub push subscription for document.updated events
	e.POST("/internal/pubsub/updates", r.updateHandler.HandlePush, jsonLimit)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth", jsonLimit)
	{
		authGroup.POST("/register/", r.authHandler.Register)
		authGroup.POST("/login/", r.authHandler.Login)
		authGroup.POST("/google/", r.authHandler.GoogleSignIn)
		authGroup.POST("/firebase/", r.authHandler.FirebaseSignIn)
		authGroup.POST("/token/refresh/", r.authHandler.RefreshToken)
		authGroup.POST("/logout/", r.authHandler.Logout)
	}

	// User routes that require authentication
	userGroup := api.Group("/user", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile/", r.userHandler.GetProfile)
	}

	// Document routes, all scoped to the authenticated user
	documentsGroup := api.Group("/documents", r.authMiddleware.Authenticate)
	{
		documentsGroup.GET("/", r.documentHandler.List)
		documentsGroup.POST("/", r.documentHandler.Upload, uploadLimit)
		documentsGroup.GET("/stats/", r.documentHandler.Stats)
		documentsGroup.GET("/:id/", r.documentHandler.Get)
		documentsGroup.DELETE("/:id/", r.documentHandler.Delete)
		documentsGroup.GET("/:id/file/", r.documentHandler.File)
		documentsGroup.GET("/:id/summary/", r.documentHandler.Summary)
		documentsGroup.GET("/:id/flashcards/", r.documentHandler.Flashcards)
		documentsGroup.POST("/:id/regenerate_flashcards/", r.documentHandler.RegenerateFlashcards, jsonLimit)
		documentsGroup.POST("/:id/regenerate_summary/", r.documentHandler.RegenerateSummary, jsonLimit)
	}
}

package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/config"
	"github.com/notemart/notemart/internal/pkg/files"
	"github.com/notemart/notemart/internal/server/http/dto"
	"github.com/notemart/notemart/internal/server/http/handlers"
	"github.com/notemart/notemart/internal/server/http/middleware"
)

// HealthChecker reports backend dependency health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, health HealthChecker, store *files.Store, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads"})))

	engine.Static("/uploads", store.Root())

	authHandler := handlers.NewAuthHandler(facade, cfg.TokenTTL)
	catalogHandler := handlers.NewCatalogHandler(facade)
	noteHandler := handlers.NewNoteHandler(facade, store)
	orderHandler := handlers.NewOrderHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.Fail("database unavailable"))
			return
		}
		c.JSON(http.StatusOK, dto.OKMessage("ok", nil))
	})

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", middleware.AuthRequired(facade), authHandler.Me)

	api.GET("/boards", catalogHandler.ListBoards)
	api.GET("/boards/:id", catalogHandler.GetBoard)
	api.GET("/streams", catalogHandler.ListStreams)
	api.GET("/streams/:id", catalogHandler.GetStream)
	api.GET("/subjects", catalogHandler.ListSubjects)
	api.GET("/subjects/:id", catalogHandler.GetSubject)
	api.GET("/notes", noteHandler.List)
	api.GET("/notes/:id", middleware.OptionalAuth(facade), noteHandler.Get)
	api.POST("/contact", contactHandler.Submit)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/notes/:id/download", noteHandler.Download)
	authed.POST("/orders/create", orderHandler.Create)
	authed.POST("/orders/verify", orderHandler.Verify)
	authed.GET("/orders/my-orders", orderHandler.My)
	authed.GET("/orders/:id", orderHandler.Get)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/boards", catalogHandler.CreateBoard)
	admin.PUT("/boards/:id", catalogHandler.UpdateBoard)
	admin.DELETE("/boards/:id", catalogHandler.DeleteBoard)
	admin.POST("/streams", catalogHandler.CreateStream)
	admin.PUT("/streams/:id", catalogHandler.UpdateStream)
	admin.DELETE("/streams/:id", catalogHandler.DeleteStream)
	admin.POST("/subjects", catalogHandler.CreateSubject)
	admin.PUT("/subjects/:id", catalogHandler.UpdateSubject)
	admin.DELETE("/subjects/:id", catalogHandler.DeleteSubject)
	admin.POST("/notes", noteHandler.Create)
	admin.PUT("/notes/:id", noteHandler.Update)
	admin.DELETE("/notes/:id", noteHandler.Delete)
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/admin/stats", statsHandler.Stats)
	admin.GET("/contact", contactHandler.List)
	admin.DELETE("/contact/:id", contactHandler.Delete)

	return engine
}

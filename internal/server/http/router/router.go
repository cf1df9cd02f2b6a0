package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/metrics"
	"github.com/hoseki-store/joyeria/internal/server/http/handlers"
	"github.com/hoseki-store/joyeria/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, storeMetrics *metrics.StoreMetrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	shipmentHandler := handlers.NewShipmentHandler(facade)
	complaintHandler := handlers.NewComplaintHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(storeMetrics.Handler()))

	authRequired := middleware.AuthRequired(facade)
	staffOnly := middleware.RequireRoles(facade, model.RoleAdmin, model.RoleEmployee)
	adminOnly := middleware.RequireRoles(facade, model.RoleAdmin)

	api := engine.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authRequired, authHandler.Me)

	// Catalog browsing is public; management is a staff concern.
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)

	api.POST("/complaints", complaintHandler.Create)

	auth := api.Group("")
	auth.Use(authRequired)
	auth.POST("/orders", orderHandler.Place)
	auth.GET("/orders/mine", orderHandler.Mine)

	staff := api.Group("")
	staff.Use(authRequired, staffOnly)
	staff.POST("/products", productHandler.Create)
	staff.PUT("/products/:id", productHandler.Update)
	staff.DELETE("/products/:id", productHandler.Delete)
	staff.POST("/categories", categoryHandler.Create)
	staff.PUT("/categories/:id", categoryHandler.Update)
	staff.DELETE("/categories/:id", categoryHandler.Delete)

	staff.GET("/orders", orderHandler.List)
	staff.GET("/orders/range", orderHandler.ListByDateRange)
	staff.GET("/orders/:id", orderHandler.Get)
	staff.PATCH("/orders/:id", orderHandler.Update)
	staff.GET("/orders/:id/shipment", shipmentHandler.GetByOrder)

	staff.POST("/shipments", shipmentHandler.Create)
	staff.GET("/shipments", shipmentHandler.List)
	staff.GET("/shipments/:id", shipmentHandler.Get)
	staff.PATCH("/shipments/:id", shipmentHandler.Update)
	staff.DELETE("/shipments/:id", shipmentHandler.Delete)

	staff.GET("/complaints", complaintHandler.List)
	staff.GET("/complaints/:id", complaintHandler.Get)
	staff.PUT("/complaints/:id", complaintHandler.Update)
	staff.DELETE("/complaints/:id", complaintHandler.Delete)

	admin := api.Group("")
	admin.Use(authRequired, adminOnly)
	admin.DELETE("/orders/:id", orderHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	return engine
}

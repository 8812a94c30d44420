package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/okatev/shopflow/internal/server/http/handlers"
	"github.com/okatev/shopflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, db handlers.Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	discountHandler := handlers.NewDiscountHandler(facade)
	returnsHandler := handlers.NewReturnsHandler(facade)
	healthHandler := handlers.NewHealthHandler(db)

	api := engine.Group("/api")

	api.GET("/health", healthHandler.Ping)
	api.POST("/checkout/express", checkoutHandler.Express)

	orders := api.Group("/orders")
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/ship", orderHandler.Ship)
	orders.POST("/:id/deliver", orderHandler.Deliver)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.POST("/:id/discount", discountHandler.Apply)

	api.POST("/discounts/bulk", discountHandler.ApplyBulk)

	returns := api.Group("/returns")
	returns.POST("", returnsHandler.Process)
	returns.POST("/eligibility", returnsHandler.Eligibility)
	returns.GET("/:id/status", returnsHandler.Status)

	return engine
}

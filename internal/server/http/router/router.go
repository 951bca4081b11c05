package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/handlers"
	"github.com/polkiloo/autoservice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WorkshopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	checklistHandler := handlers.NewChecklistHandler(facade)
	estimateHandler := handlers.NewEstimateHandler(facade)
	complaintHandler := handlers.NewComplaintHandler(facade)
	demandHandler := handlers.NewDemandHandler(facade)
	stockHandler := handlers.NewStockHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.ChangeStatus)
	orders.GET("/:id/checklist", checklistHandler.Get)
	orders.PUT("/:id/checklist", checklistHandler.Save)
	orders.POST("/:id/estimate", estimateHandler.Create)
	orders.GET("/:id/estimate", estimateHandler.Get)
	orders.PUT("/:id/estimate/:estimateId", estimateHandler.Edit)
	orders.POST("/:id/complaint", complaintHandler.Submit)
	orders.GET("/:id/complaint", complaintHandler.Get)

	complaints := api.Group("/complaints")
	complaints.POST("/:id/processing", complaintHandler.StartProcessing)
	complaints.POST("/:id/decision", complaintHandler.Decide)

	demands := api.Group("/demands")
	demands.POST("", demandHandler.Create)
	demands.GET("/:id", demandHandler.Get)
	demands.PUT("/:id", demandHandler.Edit)
	demands.PATCH("/:id/status", demandHandler.ChangeStatus)

	departments := api.Group("/departments")
	departments.GET("/:id/stock", stockHandler.List)
	departments.POST("/:id/stock", stockHandler.Add)
	departments.PATCH("/:id/stock/:ean", stockHandler.Adjust)

	return engine
}

// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneymap/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	recordController *controller.RecordController
	reportController *controller.ReportController
	exportController *controller.ExportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	reportController *controller.ReportController,
	exportController *controller.ExportController,
) *Router {
	return &Router{
		healthController: healthController,
		recordController: recordController,
		reportController: reportController,
		exportController: exportController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Record routes
		if r.recordController != nil {
			records := v1.Group("/records")
			{
				records.GET("", r.recordController.List)
				records.POST("", r.recordController.Create)
				records.PATCH("/:id", r.recordController.Update)
				records.DELETE("/:id", r.recordController.Delete)
			}
		}

		// Report routes
		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("", r.reportController.GetReport)
			}
		}

		// Export routes
		if r.exportController != nil {
			exports := v1.Group("/exports")
			{
				exports.GET("/csv", r.exportController.ExportCSV)
				exports.GET("/pdf", r.exportController.ExportPDF)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

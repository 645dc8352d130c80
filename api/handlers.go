// Package api exposes the search engine over HTTP. It is the host surface of
// the system: transport, declarative filters, background ingestion, and
// observability live here, while the engine packages stay free of I/O.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagesift/go-page-search/internal/analytics"
	"github.com/pagesift/go-page-search/internal/jobs"
	"github.com/pagesift/go-page-search/internal/metrics"
	"github.com/pagesift/go-page-search/services"
)

// API holds dependencies for API handlers, primarily the search engine manager.
type API struct {
	engine    services.IndexManager
	jobs      *jobs.Manager
	analytics *analytics.Service
	metrics   *metrics.Metrics
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager, jobManager *jobs.Manager, m *metrics.Metrics) *API {
	return &API{
		engine:    engine,
		jobs:      jobManager,
		analytics: analytics.NewService(),
		metrics:   m,
	}
}

// SetupRoutes defines all the API routes for the search engine host.
func SetupRoutes(router *gin.Engine, engine services.IndexManager, jobManager *jobs.Manager, m *metrics.Metrics, log zerolog.Logger) *API {
	apiHandler := NewAPI(engine, jobManager, m)

	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(log))
	router.Use(MetricsMiddleware(m))
	router.Use(CORSMiddleware())

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler) // Get job status by ID
	}

	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)              // Create a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)               // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)       // Get index settings and stats
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler) // Delete an index
		indexRoutes.GET("/:indexName/jobs", apiHandler.ListJobsHandler)  // List jobs for an index

		indexRoutes.PUT("/:indexName/documents", apiHandler.AddDocumentsHandler) // Add documents (sync or async)

		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
	}

	return apiHandler
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetAnalyticsHandler returns the aggregated recent search activity.
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.Summary())
}

package main

import (
	"context"
	"net/http"
	"time"

	"homeinsight-valuation/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupMetricsEndpoint()
	a.setupAPIRoutes()
}

// setupHealthCheck configures the health check endpoint. Upstream model
// service reachability is reported but never fails the check: the service
// keeps answering with local estimates when the model is down.
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"modelService": a.ValuationService.UpstreamHealthy(ctx),
		})
	})
}

// setupMetricsEndpoint exposes Prometheus metrics
func (a *App) setupMetricsEndpoint() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes, consumed by the browser form
		api.POST("/valuations", a.ValuationHandler.CreateValuation)
		api.GET("/neighborhoods", a.NeighborhoodHandler.ListNeighborhoods)
		api.GET("/model/status", a.ValuationHandler.GetModelStatus)

		// Protected operator routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			admin.GET("/valuations", a.AdminHandler.ListValuations)
			admin.POST("/cache/flush", a.AdminHandler.FlushNeighborhoodCache)
		}
	}
}

package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the /v1 endpoints on rg.
//
//	POST /v1/align  - align two sequences (rate limited when configured)
//	GET  /v1/health - liveness
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/align", RateLimit(h.limiter, h.metrics), h.HandleAlign)
	rg.GET("/health", h.HandleHealth)
}

// NewRouter builds the gin engine with recovery, the /v1 routes and
// /metrics served from gatherer.
func NewRouter(h *Handlers, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	RegisterRoutes(router.Group("/v1"), h)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

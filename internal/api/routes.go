// Package api wires the HTTP surface: item routes, metrics, and the static
// frontend fallback.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/marklist/internal/middleware"
)

// RouterConfig carries the settings the router needs.
type RouterConfig struct {
	CORSOrigin string
	StaticDir  string
}

// NewRouter builds the gin engine with middleware, item routes, /metrics and
// the static fallback.
func NewRouter(cfg RouterConfig, items ItemService) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.Logging(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigin),
	)

	h := NewHandlers(items)
	router.GET("/api/items", h.ListItems)
	router.POST("/api/items", h.CreateItem)
	router.DELETE("/delete", h.DeleteItems)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(StaticHandler(cfg.StaticDir))

	return router
}

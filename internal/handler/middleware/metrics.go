package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, seconds float64)
}

// MetricsExporter records request metrics and serves the exposition endpoint.
type MetricsExporter interface {
	HTTPObserver
	Handler() http.Handler
}

// Metrics labels requests by route template so path IDs do not explode
// label cardinality.
func Metrics(obs HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}

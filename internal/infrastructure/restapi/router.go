package restapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter wires the HTTP surface: the balances endpoint, a liveness
// probe, and the Prometheus scrape endpoint. The balances endpoint is read
// by browser dashboards on other origins, so CORS allows any origin for the
// read-only GET surface.
func SetupRouter(balanceHandler *BalanceHandler, registry *prometheus.Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/balances", balanceHandler.GetBalancesHandler)
	router.GET("/healthz", HealthHandler)

	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	return router
}

// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/segment-insights/config"
	"github.com/guttosm/segment-insights/internal/http"
	"github.com/guttosm/segment-insights/internal/logger"
	"github.com/guttosm/segment-insights/internal/service"
	"github.com/guttosm/segment-insights/internal/trino"
)

// InitializeApp creates and wires all application dependencies. The gate and
// cache are constructed once here and shared by every request handler; there
// is deliberately no other path to the executor.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	logger.Init(cfg.Server.LogLevel, cfg.Server.LogPretty)

	executor, err := trino.NewClient(cfg.Trino)
	if err != nil {
		return nil, fmt.Errorf("initializing query executor: %w", err)
	}

	analytics := service.NewAnalytics(
		executor,
		service.NewGate(cfg.Query.GateCapacity),
		service.NewTTLCache(),
		service.Config{
			MySQLSchema:         cfg.Trino.MySQLSchema,
			MetricTTL:           cfg.Cache.MetricTTL,
			DashboardTTL:        cfg.Cache.DashboardTTL,
			TopCustomersDefault: cfg.Query.TopCustomers,
			TopCustomersMax:     cfg.Query.TopCustomersMax,
		},
	)

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return http.NewRouter(http.NewHandler(analytics), routerCfg), nil
}

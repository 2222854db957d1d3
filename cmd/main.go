// Package main is the entry point for the segment insights service.
//
// @title           Segment Insights API
// @version         1.0.0
// @description     Read-only analytics API for business metrics over a federated
// @description     warehouse: revenue, order counts, top customers, and segment
// @description     breakdowns, served from short-lived caches with bounded
// @description     concurrency toward the query engine.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/segment-insights
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Metrics
// @tag.description Dashboard metric endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/segment-insights/docs" // swagger docs

	"github.com/guttosm/segment-insights/config"
	"github.com/guttosm/segment-insights/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

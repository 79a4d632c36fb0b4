// Package main is the entry point for the sheet-pricing-service application.
//
// @title           Sheet Pricing Service API
// @version         1.0.0
// @description     API for nesting cut-to-size pieces on stock sheets and pricing
// @description     orders through the multi-stage pricing pipeline.
//
// @contact.name   API Support
// @contact.email  support@signcraft.example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Quotes
// @tag.description Quote calculation operations
//
// @tag.name        Materials
// @tag.description Material configuration endpoints
//
// @tag.name        RuleSets
// @tag.description Pricing rule set endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/signcraft/sheet-pricing-service/docs" // swagger docs

	"github.com/signcraft/sheet-pricing-service/config"
	"github.com/signcraft/sheet-pricing-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

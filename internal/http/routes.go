package http

import (
	"github.com/gin-gonic/gin"
)

// registerQuoteRoutes registers the quote and configuration routes.
func registerQuoteRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.QuoteService != nil {
		handler := NewHandler(cfg.QuoteService)
		api.POST("/quote", handler.Quote)
	}

	if cfg.MaterialsService != nil {
		materials := NewMaterialsHandler(cfg.MaterialsService)
		api.GET("/materials", materials.List)
		api.GET("/materials/:id", materials.Get)
		api.PUT("/materials/:id", materials.Upsert)
		api.DELETE("/materials/:id", materials.Delete)
	}

	if cfg.RuleSetsService != nil {
		ruleSets := NewRuleSetsHandler(cfg.RuleSetsService)
		api.GET("/rule-sets", ruleSets.GetActive)
		api.PUT("/rule-sets", ruleSets.Create)
		api.GET("/rule-sets/history", ruleSets.History)
	}
}

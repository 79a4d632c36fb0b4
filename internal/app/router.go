package app

import (
	"github.com/signcraft/sheet-pricing-service/config"
	"github.com/signcraft/sheet-pricing-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register database and circuit breaker checks for readiness
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(dbComponents.DB.HealthCheck))
		if dbComponents.MaterialsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_materials", dbComponents.MaterialsCircuitBreaker)
		}
		if dbComponents.RuleSetsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_rule_sets", dbComponents.RuleSetsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:        cfg.Server.RateLimit,
		RateWindow:       cfg.Server.RateWindow,
		RequestTimeout:   cfg.Server.RequestTimeout,
		CORSOrigins:      cfg.Server.CORSOrigins,
		SwaggerUser:      cfg.Server.SwaggerUser,
		SwaggerPass:      cfg.Server.SwaggerPass,
		QuoteService:     services.Quotes,
		MaterialsService: services.Materials,
		RuleSetsService:  services.RuleSets,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

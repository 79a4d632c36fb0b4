package app

import (
	"github.com/signcraft/sheet-pricing-service/config"
	"github.com/signcraft/sheet-pricing-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Quotes    service.QuoteService
	Materials service.MaterialsService
	RuleSets  service.RuleSetsService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	opts := []service.Option{
		service.WithDefaultPolicy(cfg.Pricing.Policy()),
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	if dbComponents != nil {
		opts = append(opts,
			service.WithMaterials(dbComponents.MaterialsRepo),
			service.WithRuleSets(dbComponents.RuleSetsRepo),
		)
	}

	quotes := service.NewQuoteService(opts...)

	components := &ServiceComponents{Quotes: quotes}
	if dbComponents != nil {
		components.Materials = service.NewMaterialsService(dbComponents.MaterialsRepo, quotes)
		components.RuleSets = service.NewRuleSetsService(dbComponents.RuleSetsRepo, quotes)
	}

	return components
}

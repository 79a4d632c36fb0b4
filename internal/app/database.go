package app

import (
	"github.com/rs/zerolog/log"

	"github.com/signcraft/sheet-pricing-service/config"
	"github.com/signcraft/sheet-pricing-service/internal/circuitbreaker"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	MaterialsRepo           repository.MaterialsRepositoryInterface
	RuleSetsRepo            repository.RuleSetsRepositoryInterface
	MaterialsCircuitBreaker *circuitbreaker.CircuitBreaker
	RuleSetsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates the
// materials and rule set repositories.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	materialsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-materials",
	})

	ruleSetsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-rule-sets",
	})

	materialsRepo := repository.NewMaterialsRepositoryWithCircuitBreaker(
		repository.NewMaterialsRepository(db), materialsCB)
	ruleSetsRepo := repository.NewRuleSetsRepositoryWithCircuitBreaker(
		repository.NewRuleSetsRepository(db), ruleSetsCB)

	return &DatabaseComponents{
		DB:                      db,
		MaterialsRepo:           materialsRepo,
		RuleSetsRepo:            ruleSetsRepo,
		MaterialsCircuitBreaker: materialsCB,
		RuleSetsCircuitBreaker:  ruleSetsCB,
	}
}

// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/signcraft/sheet-pricing-service/internal/circuitbreaker"
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
)

// MaterialsRepositoryWithCircuitBreaker wraps MaterialsRepository with
// circuit breaker protection.
type MaterialsRepositoryWithCircuitBreaker struct {
	repo           *MaterialsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMaterialsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMaterialsRepositoryWithCircuitBreaker(repo *MaterialsRepository, cb *circuitbreaker.CircuitBreaker) *MaterialsRepositoryWithCircuitBreaker {
	return &MaterialsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByMaterialID looks up a material with circuit breaker protection.
// When the circuit is open the material is reported as not found so the
// quote path fails fast with a clear error instead of hanging.
func (r *MaterialsRepositoryWithCircuitBreaker) GetByMaterialID(ctx context.Context, materialID string) (*MaterialConfig, error) {
	var result *MaterialConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByMaterialID(ctx, materialID)
		return cbErr
	})
	return result, err
}

// Upsert stores a material with circuit breaker protection.
func (r *MaterialsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, materialID string, update MaterialConfig) (*MaterialConfig, error) {
	var result *MaterialConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, materialID, update)
		return cbErr
	})
	return result, err
}

// List returns the material catalog with circuit breaker protection.
func (r *MaterialsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]MaterialConfig, error) {
	var result []MaterialConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Delete removes a material with circuit breaker protection.
func (r *MaterialsRepositoryWithCircuitBreaker) Delete(ctx context.Context, materialID string) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, materialID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MaterialsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RuleSetsRepositoryWithCircuitBreaker wraps RuleSetsRepository with
// circuit breaker protection.
type RuleSetsRepositoryWithCircuitBreaker struct {
	repo           *RuleSetsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRuleSetsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRuleSetsRepositoryWithCircuitBreaker(repo *RuleSetsRepository, cb *circuitbreaker.CircuitBreaker) *RuleSetsRepositoryWithCircuitBreaker {
	return &RuleSetsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active rule set with circuit breaker protection.
// When the circuit is open, quotes proceed without stored rules rather
// than failing: inline rules and the no-rules path stay available.
func (r *RuleSetsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*RuleSetConfig, error) {
	var result *RuleSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// GetByID returns a rule set with circuit breaker protection.
func (r *RuleSetsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*RuleSetConfig, error) {
	var result *RuleSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Create stores a new rule-set version with circuit breaker protection.
func (r *RuleSetsRepositoryWithCircuitBreaker) Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*RuleSetConfig, error) {
	var result *RuleSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, rules, createdBy)
		return cbErr
	})
	return result, err
}

// List returns rule-set versions with circuit breaker protection.
func (r *RuleSetsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]RuleSetConfig, error) {
	var result []RuleSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RuleSetsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

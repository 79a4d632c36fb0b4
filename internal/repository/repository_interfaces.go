// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
)

// MaterialsRepositoryInterface defines the interface for material catalog operations.
type MaterialsRepositoryInterface interface {
	GetByMaterialID(ctx context.Context, materialID string) (*MaterialConfig, error)
	Upsert(ctx context.Context, materialID string, update MaterialConfig) (*MaterialConfig, error)
	List(ctx context.Context, limit int) ([]MaterialConfig, error)
	Delete(ctx context.Context, materialID string) (bool, error)
}

// RuleSetsRepositoryInterface defines the interface for rule-set operations.
type RuleSetsRepositoryInterface interface {
	GetActive(ctx context.Context) (*RuleSetConfig, error)
	GetByID(ctx context.Context, id string) (*RuleSetConfig, error)
	Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*RuleSetConfig, error)
	List(ctx context.Context, limit int) ([]RuleSetConfig, error)
}

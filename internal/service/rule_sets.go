package service

import (
	"context"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
)

// RuleSetsService provides pricing rule-set operations.
type RuleSetsService interface {
	GetActive(ctx context.Context) (*repository.RuleSetConfig, error)
	Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*repository.RuleSetConfig, error)
	List(ctx context.Context, limit int) ([]repository.RuleSetConfig, error)
}

// RuleSetsServiceImpl implements RuleSetsService.
type RuleSetsServiceImpl struct {
	ruleSetsRepo repository.RuleSetsRepositoryInterface
	quotes       QuoteService
}

// NewRuleSetsService creates a new rule sets service. The quote service
// is optional; when present, its cache is invalidated when the active
// rule set changes.
func NewRuleSetsService(ruleSetsRepo repository.RuleSetsRepositoryInterface, quotes QuoteService) *RuleSetsServiceImpl {
	return &RuleSetsServiceImpl{
		ruleSetsRepo: ruleSetsRepo,
		quotes:       quotes,
	}
}

func (s *RuleSetsServiceImpl) GetActive(ctx context.Context) (*repository.RuleSetConfig, error) {
	if s.ruleSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ruleSetsRepo.GetActive(ctx)
}

func (s *RuleSetsServiceImpl) Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*repository.RuleSetConfig, error) {
	if s.ruleSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := model.ValidateRules(rules); err != nil {
		return nil, err
	}
	config, err := s.ruleSetsRepo.Create(ctx, rules, createdBy)
	if err != nil {
		return nil, err
	}
	if s.quotes != nil {
		s.quotes.InvalidateCache()
	}
	return config, nil
}

func (s *RuleSetsServiceImpl) List(ctx context.Context, limit int) ([]repository.RuleSetConfig, error) {
	if s.ruleSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ruleSetsRepo.List(ctx, limit)
}

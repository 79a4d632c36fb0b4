// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
)

type MockMaterialsRepositoryInterface struct {
	mock.Mock
}

func (m *MockMaterialsRepositoryInterface) GetByMaterialID(ctx context.Context, materialID string) (*repository.MaterialConfig, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MaterialConfig), args.Error(1)
}

func (m *MockMaterialsRepositoryInterface) Upsert(ctx context.Context, materialID string, update repository.MaterialConfig) (*repository.MaterialConfig, error) {
	args := m.Called(ctx, materialID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MaterialConfig), args.Error(1)
}

func (m *MockMaterialsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.MaterialConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MaterialConfig), args.Error(1)
}

func (m *MockMaterialsRepositoryInterface) Delete(ctx context.Context, materialID string) (bool, error) {
	args := m.Called(ctx, materialID)
	return args.Bool(0), args.Error(1)
}

type MockRuleSetsRepositoryInterface struct {
	mock.Mock
}

func (m *MockRuleSetsRepositoryInterface) GetActive(ctx context.Context) (*repository.RuleSetConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RuleSetConfig), args.Error(1)
}

func (m *MockRuleSetsRepositoryInterface) GetByID(ctx context.Context, id string) (*repository.RuleSetConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RuleSetConfig), args.Error(1)
}

func (m *MockRuleSetsRepositoryInterface) Create(ctx context.Context, rules []model.PricingRule, createdBy string) (*repository.RuleSetConfig, error) {
	args := m.Called(ctx, rules, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RuleSetConfig), args.Error(1)
}

func (m *MockRuleSetsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.RuleSetConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RuleSetConfig), args.Error(1)
}

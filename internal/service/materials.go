package service

import (
	"context"
	"errors"

	"github.com/signcraft/sheet-pricing-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// MaterialsService provides material catalog operations.
type MaterialsService interface {
	Get(ctx context.Context, materialID string) (*repository.MaterialConfig, error)
	Upsert(ctx context.Context, materialID string, update repository.MaterialConfig) (*repository.MaterialConfig, error)
	List(ctx context.Context, limit int) ([]repository.MaterialConfig, error)
	Delete(ctx context.Context, materialID string) (bool, error)
}

// MaterialsServiceImpl implements MaterialsService.
type MaterialsServiceImpl struct {
	materialsRepo repository.MaterialsRepositoryInterface
	quotes        QuoteService
}

// NewMaterialsService creates a new materials service. The quote service
// is optional; when present, its cache is invalidated on writes.
func NewMaterialsService(materialsRepo repository.MaterialsRepositoryInterface, quotes QuoteService) *MaterialsServiceImpl {
	return &MaterialsServiceImpl{
		materialsRepo: materialsRepo,
		quotes:        quotes,
	}
}

func (s *MaterialsServiceImpl) Get(ctx context.Context, materialID string) (*repository.MaterialConfig, error) {
	if s.materialsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialsRepo.GetByMaterialID(ctx, materialID)
}

func (s *MaterialsServiceImpl) Upsert(ctx context.Context, materialID string, update repository.MaterialConfig) (*repository.MaterialConfig, error) {
	if s.materialsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	config, err := s.materialsRepo.Upsert(ctx, materialID, update)
	if err != nil {
		return nil, err
	}
	if s.quotes != nil {
		s.quotes.InvalidateCache()
	}
	return config, nil
}

func (s *MaterialsServiceImpl) List(ctx context.Context, limit int) ([]repository.MaterialConfig, error) {
	if s.materialsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.materialsRepo.List(ctx, limit)
}

func (s *MaterialsServiceImpl) Delete(ctx context.Context, materialID string) (bool, error) {
	if s.materialsRepo == nil {
		return false, ErrRepositoryNotConfigured
	}
	deleted, err := s.materialsRepo.Delete(ctx, materialID)
	if err != nil {
		return false, err
	}
	if deleted && s.quotes != nil {
		s.quotes.InvalidateCache()
	}
	return deleted, nil
}

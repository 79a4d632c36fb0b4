package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/signcraft/sheet-pricing-service/internal/domain/dto"
	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/metrics"
	"github.com/signcraft/sheet-pricing-service/internal/nesting"
	"github.com/signcraft/sheet-pricing-service/internal/pricing"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
	"github.com/signcraft/sheet-pricing-service/internal/service/cache"
)

var (
	// ErrMaterialNotFound is returned when a referenced material does not exist.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrRuleSetNotFound is returned when a referenced rule set does not exist.
	ErrRuleSetNotFound = errors.New("rule set not found")
)

// QuoteService defines the interface for quote operations.
type QuoteService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (model.QuoteResult, error)
	// InvalidateCache clears the quote cache (useful when rule sets or
	// materials change).
	InvalidateCache()
}

// Option configures a QuoteServiceImpl.
type Option func(*QuoteServiceImpl)

// QuoteServiceImpl implements QuoteService. It resolves material and
// rule-set references, runs the pricing pipeline, and caches results by a
// content hash of the fully resolved input.
type QuoteServiceImpl struct {
	materials     repository.MaterialsRepositoryInterface
	ruleSets      repository.RuleSetsRepositoryInterface
	cache         cache.Cache
	defaultPolicy model.ChargingPolicy
}

// NewQuoteService creates a new QuoteService with the given options.
func NewQuoteService(opts ...Option) *QuoteServiceImpl {
	s := &QuoteServiceImpl{
		defaultPolicy: model.DefaultChargingPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaterials wires the material catalog used to resolve material_id
// references.
func WithMaterials(repo repository.MaterialsRepositoryInterface) Option {
	return func(s *QuoteServiceImpl) {
		s.materials = repo
	}
}

// WithRuleSets wires the rule-set store used when a request carries no
// inline rules.
func WithRuleSets(repo repository.RuleSetsRepositoryInterface) Option {
	return func(s *QuoteServiceImpl) {
		s.ruleSets = repo
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *QuoteServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *QuoteServiceImpl) {
		s.cache = c
	}
}

// WithDefaultPolicy overrides the service-wide default charging policy.
func WithDefaultPolicy(p model.ChargingPolicy) Option {
	return func(s *QuoteServiceImpl) {
		s.defaultPolicy = p
	}
}

// Quote resolves the request to a concrete pricing input and executes the
// pipeline. The request is expected to have passed dto validation.
func (s *QuoteServiceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (model.QuoteResult, error) {
	start := time.Now()

	in, err := s.resolve(ctx, req)
	if err != nil {
		metrics.RecordQuote(time.Since(start), "resolve_error")
		return model.QuoteResult{}, err
	}

	key := quoteCacheKey(in)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordQuote(time.Since(start), "cache_hit")
			return result, nil
		}
	}

	result, err := pricing.Execute(in)
	if err != nil {
		metrics.RecordQuote(time.Since(start), quoteErrorStatus(err))
		return model.QuoteResult{}, err
	}

	if n := result.Breakdown.Nesting; n.OversizeRulesApplied > 0 {
		action := "surcharge"
		if n.SegmentsPerPiece > 1 {
			action = "split"
		}
		metrics.RecordOversize(action)
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	metrics.RecordQuote(time.Since(start), "success")
	return result, nil
}

// InvalidateCache clears all cached quote results.
func (s *QuoteServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// resolve turns a request into a self-contained pricing input: material
// and rule-set references become concrete values. Precedence for the
// charging policy is request, then material, then service default; the
// same ordering applies to volume tiers.
func (s *QuoteServiceImpl) resolve(ctx context.Context, req dto.QuoteRequest) (pricing.QuoteInput, error) {
	in := pricing.QuoteInput{
		PieceWidth:      req.Piece.Width,
		PieceHeight:     req.Piece.Height,
		Quantity:        req.Piece.Quantity,
		MinPricePerItem: req.MinPricePerItem,
		Policy:          s.defaultPolicy,
		VolumeTiers:     req.VolumeTiers,
	}

	if req.Sheet != nil {
		in.SheetWidth = req.Sheet.Width
		in.SheetHeight = req.Sheet.Height
		in.BaseSheetCost = req.Sheet.BaseCost
	} else {
		if s.materials == nil {
			return pricing.QuoteInput{}, ErrMaterialNotFound
		}
		material, err := s.materials.GetByMaterialID(ctx, req.MaterialID)
		if err != nil {
			return pricing.QuoteInput{}, err
		}
		if material == nil {
			return pricing.QuoteInput{}, ErrMaterialNotFound
		}
		in.SheetWidth = material.Sheet.Width
		in.SheetHeight = material.Sheet.Height
		in.BaseSheetCost = material.Sheet.BaseCost
		if material.Policy != nil {
			in.Policy = *material.Policy
		}
		if in.VolumeTiers == nil {
			in.VolumeTiers = material.VolumeTiers
		}
	}

	if req.Policy != nil {
		in.Policy = *req.Policy
	}

	rules, err := s.resolveRules(ctx, req)
	if err != nil {
		return pricing.QuoteInput{}, err
	}
	in.Rules = rules

	return in, nil
}

// resolveRules picks the rule list: inline rules win, then an explicit
// rule-set reference, then the active stored rule set, then none.
func (s *QuoteServiceImpl) resolveRules(ctx context.Context, req dto.QuoteRequest) ([]model.PricingRule, error) {
	if req.Rules != nil {
		return req.Rules, nil
	}
	if s.ruleSets == nil {
		return nil, nil
	}
	if req.RuleSetID != "" {
		rs, err := s.ruleSets.GetByID(ctx, req.RuleSetID)
		if err != nil {
			return nil, err
		}
		if rs == nil {
			return nil, ErrRuleSetNotFound
		}
		return rs.Rules, nil
	}
	rs, err := s.ruleSets.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if rs == nil {
		return nil, nil
	}
	return rs.Rules, nil
}

// quoteCacheKey hashes the fully resolved input so identical quotes share
// a cache entry no matter how they were expressed on the wire.
func quoteCacheKey(in pricing.QuoteInput) string {
	b, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func quoteErrorStatus(err error) string {
	var geoErr *nesting.GeometryError
	if errors.As(err, &geoErr) {
		return "geometry_error"
	}
	var cfgErr *nesting.ConfigError
	if errors.As(err, &cfgErr) {
		return "config_error"
	}
	if errors.Is(err, model.ErrInvalidRule) {
		return "invalid_rule"
	}
	return "error"
}

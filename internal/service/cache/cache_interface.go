package cache

import "github.com/signcraft/sheet-pricing-service/internal/domain/model"

// Cache defines the interface for quote result caching. Keys are content
// hashes of the full pricing input, so two requests with identical inputs
// share an entry regardless of field order on the wire.
type Cache interface {
	Get(key string) (model.QuoteResult, bool)
	Set(key string, value model.QuoteResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

const (
	reportCacheKey  = "inventory:analytics:report"
	summaryCacheKey = "inventory:analytics:summary"
	generationKey   = "inventory:analytics:generation"
)

// ProductLister is the read side of the product store.
type ProductLister interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// Cache stores JSON snapshots and the counter that versions them.
// redissvc.RedisService satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Counter(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Service serves the analytics report and dashboard summary, recomputing from the store
// whenever the cache is cold, disabled or failing.
type Service struct {
	products ProductLister
	cache    Cache
	ttl      time.Duration
	log      *zap.Logger
}

// NewService wires the service. A nil cache or a zero ttl disables caching.
func NewService(products ProductLister, cache Cache, ttl time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{products: products, cache: cache, ttl: ttl, log: log}
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *Service) load(ctx context.Context, op string) ([]models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, &apperr.StoreUnavailableError{Op: op, Err: err}
	}
	return products, nil
}

// ComputeAnalytics returns the full analytics report.
func (s *Service) ComputeAnalytics(ctx context.Context) (Report, error) {
	key := s.versionedKey(ctx, reportCacheKey)

	var rep Report
	if s.fromCache(ctx, key, &rep) {
		return rep, nil
	}

	products, err := s.load(ctx, "compute analytics")
	if err != nil {
		return Report{}, err
	}
	rep = Compute(products)
	s.toCache(ctx, key, rep)
	return rep, nil
}

// ComputeDashboardSummary returns the landing-page counts.
func (s *Service) ComputeDashboardSummary(ctx context.Context) (Summary, error) {
	key := s.versionedKey(ctx, summaryCacheKey)

	var sum Summary
	if s.fromCache(ctx, key, &sum) {
		return sum, nil
	}

	products, err := s.load(ctx, "compute dashboard summary")
	if err != nil {
		return Summary{}, err
	}
	sum = Summarize(products)
	s.toCache(ctx, key, sum)
	return sum, nil
}

// Invalidate moves the cache to a new generation. Snapshots written under an older
// generation, including ones computed from a read that raced the mutation, are never read again
// and expire with their ttl.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	_, err := s.cache.Incr(ctx, generationKey)
	return err
}

// versionedKey binds base to the generation current before the store is read.
// It returns "" when the generation is unknown, which disables caching for the call.
func (s *Service) versionedKey(ctx context.Context, base string) string {
	if !s.cacheEnabled() {
		return ""
	}
	gen, err := s.cache.Counter(ctx, generationKey)
	if err != nil {
		s.log.Warn("analytics cache generation read failed", zap.Error(err))
		return ""
	}
	return fmt.Sprintf("%s:%d", base, gen)
}

func (s *Service) fromCache(ctx context.Context, key string, dst any) bool {
	if key == "" {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.log.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"partner-revenue/domain"
	"partner-revenue/repository"
)

const cacheKeyPrefix = "projection:v1:"

type ProjectionService struct {
	cache      repository.CacheRepository
	cacheTTL   time.Duration
	maxPeriods int
}

// NewProjectionService creates a ProjectionService. cache may be nil, in which
// case every call recomputes.
func NewProjectionService(
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	maxPeriods int,
) *ProjectionService {
	if maxPeriods <= 0 {
		maxPeriods = DefaultMaxPeriods
	}
	return &ProjectionService{cache: cache, cacheTTL: cacheTTL, maxPeriods: maxPeriods}
}

// Project validates the input, runs the simulation and returns the period
// records with comparison metrics and insights.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	if err := ValidateInput(input, s.maxPeriods); err != nil {
		return domain.ProjectionResult{}, err
	}
	input = normalize(input)

	key := cacheKey(input)
	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	records := Simulate(input.MonthlyNewUsers, input.ConversionRate, input.NumPeriods, input.UnitPrice)
	comparison := ComparisonMetrics(records, input.ConversionRate, input.CurrentAvgRevenuePerUser, input.UnitPrice)

	result := domain.ProjectionResult{
		Input:      input,
		Records:    records,
		Comparison: comparison,
		Insights:   BuildInsights(records, input, comparison),
	}

	// Guardar en caché (no crítico si falla)
	s.store(ctx, key, result)

	return result, nil
}

func (s *ProjectionService) lookup(ctx context.Context, key string) (domain.ProjectionResult, bool) {
	if s.cache == nil {
		return domain.ProjectionResult{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ProjectionResult{}, false
	}
	var result domain.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return domain.ProjectionResult{}, false
	}
	return result, true
}

func (s *ProjectionService) store(ctx context.Context, key string, result domain.ProjectionResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode projection for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache projection: %v", err)
	}
}

// cacheKey is canonical for a normalized input: equal inputs give equal keys.
func cacheKey(input domain.ProjectionInput) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return cacheKeyPrefix + fmt.Sprintf("%d:%s:%d:%s:%s",
		input.MonthlyNewUsers,
		f(input.ConversionRate),
		input.NumPeriods,
		f(input.UnitPrice),
		f(input.CurrentAvgRevenuePerUser),
	)
}

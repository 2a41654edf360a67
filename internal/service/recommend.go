package service

import (
	"context"
	"fmt"

	"github.com/windoze95/saltybytes-picks/internal/cache"
	"github.com/windoze95/saltybytes-picks/internal/config"
	"github.com/windoze95/saltybytes-picks/internal/logger"
	"github.com/windoze95/saltybytes-picks/internal/models"
	"github.com/windoze95/saltybytes-picks/internal/search"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BatchSearcher runs a batch of marketplace queries.
type BatchSearcher interface {
	SearchAll(ctx context.Context, queries []string) search.Outcome
}

// AggregationError is returned when a recommendation could not be built.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("failed to build recommendation: %v", e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// RecommendService builds ranked dish picks for a dietary target.
type RecommendService struct {
	Cfg     *config.Config
	Gateway BatchSearcher
	Cache   *cache.ResponseCache
	Scorer  *Scorer

	group singleflight.Group
}

// NewRecommendService creates a new RecommendService. A nil cache or scorer
// gets a default one.
func NewRecommendService(cfg *config.Config, gateway BatchSearcher, responseCache *cache.ResponseCache, scorer *Scorer) *RecommendService {
	if responseCache == nil {
		responseCache = cache.New(nil, cache.DefaultTTL)
	}
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &RecommendService{
		Cfg:     cfg,
		Gateway: gateway,
		Cache:   responseCache,
		Scorer:  scorer,
	}
}

// Recommend returns the picks for target, serving from the cache when a
// fresh payload exists. Concurrent misses for the same target share one
// pipeline run. The shared run is detached from any single caller, so a
// caller whose ctx ends gets only its own cancellation error while the run
// keeps going for the others.
func (s *RecommendService) Recommend(ctx context.Context, target models.Target) (*models.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AggregationError{Err: err}
	}

	key := cache.Key(target)
	if rec, ok := s.Cache.Get(key); ok {
		logger.Get().Debug("recommendation cache hit", zap.String("key", key))
		return rec, nil
	}

	runCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		if rec, ok := s.Cache.Get(key); ok {
			return rec, nil
		}
		rec, err := s.build(runCtx, target)
		if err != nil {
			return nil, err
		}
		s.Cache.Set(key, rec)
		return rec, nil
	})

	select {
	case <-ctx.Done():
		logger.Get().Debug("caller left before recommendation was ready", zap.String("key", key), zap.Error(ctx.Err()))
		return nil, &AggregationError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Get().Debug("recommendation shared with concurrent request", zap.String("key", key))
		}
		return res.Val.(*models.Recommendation).Clone(), nil
	}
}

// build runs the query, search and aggregation steps once.
func (s *RecommendService) build(ctx context.Context, target models.Target) (*models.Recommendation, error) {
	queries := BuildQueries(target.Calories, target.Taste)
	outcome := s.Gateway.SearchAll(ctx, queries)

	// Results gathered under a cancelled context are never cached.
	if err := ctx.Err(); err != nil {
		return nil, &AggregationError{Err: err}
	}

	rec := &models.Recommendation{
		TargetCalories: target.Calories,
		Activity:       target.Activity,
		Taste:          target.Taste,
	}

	merged := outcome.Merged()
	if outcome.Status == search.StatusNotConfigured || len(merged) == 0 {
		rec.Picks = fallbackPicks(outcome.Attempted, target)
		logger.Get().Info("serving fallback picks",
			zap.String("status", outcome.Status.String()),
			zap.Int("attempted", len(outcome.Attempted)),
			zap.Int("failed", outcome.Failures()),
		)
		return rec, nil
	}

	rec.Picks = scoredPicks(s.Scorer, merged, target)
	rec.UsedCSE = true
	logger.Get().Info("serving scored picks",
		zap.Int("results", len(merged)),
		zap.Int("attempted", len(outcome.Attempted)),
		zap.Int("failed", outcome.Failures()),
	)
	return rec, nil
}

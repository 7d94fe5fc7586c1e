package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymprogress/internal/cache"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

const (
	summaryCacheKeyPrefix = "progress::summary::"

	SourceUser     = "user"
	SourceSupplied = "supplied"
)

type recordsRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]WorkoutSetRecord, error)
}

type summaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Service loads a user's workout sets and derives their progress. Summaries
// are memoized by input fingerprint, so a cache failure only costs a recompute.
type Service struct {
	repo           recordsRepo
	cache          summaryCache
	cacheTTL       time.Duration
	engine         *Engine
	metricsManager *metrics.Manager
}

func NewService(
	repo recordsRepo,
	cache summaryCache,
	cacheTTL time.Duration,
	engine *Engine,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		engine:         engine,
		metricsManager: metricsManager,
	}
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	records, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout sets: %w", err)
	}
	span.SetAttributes(attribute.Int("records", len(records)))

	summary := s.evaluate(ctx, records, SourceUser)
	return &summary, nil
}

func (s *Service) Streak(ctx context.Context, userID uuid.UUID) (int, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return 0, err
	}
	return summary.Streak, nil
}

func (s *Service) XP(ctx context.Context, userID uuid.UUID) (*XPResult, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &summary.XP, nil
}

func (s *Service) Achievements(ctx context.Context, userID uuid.UUID) (*AchievementsResult, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &summary.Achievements, nil
}

// Evaluate computes the summary for records supplied by the caller.
func (s *Service) Evaluate(ctx context.Context, records []WorkoutSetRecord) *Summary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.evaluate")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	summary := s.evaluate(ctx, records, SourceSupplied)
	return &summary
}

func (s *Service) evaluate(ctx context.Context, records []WorkoutSetRecord, source string) Summary {
	// the key and the summary must agree on the day, even across midnight
	today := s.engine.today()

	cacheKey := ""
	if s.cache != nil {
		fingerprint, err := s.engine.FingerprintAt(records, today)
		if err != nil {
			log.Warnf("progress service: fingerprint records: %s", err)
		} else {
			cacheKey = summaryCacheKeyPrefix + fingerprint
		}
	}

	if cacheKey != "" {
		if summary, ok := s.cachedSummary(ctx, cacheKey); ok {
			s.metricsManager.CounterSummaryCacheHits.Inc()
			return summary
		}
		s.metricsManager.CounterSummaryCacheMisses.Inc()
	}

	start := time.Now()
	summary := s.engine.SummaryAt(records, today)
	s.metricsManager.HistogramEvaluationDuration.Observe(time.Since(start).Seconds())
	s.metricsManager.HistogramEvaluatedRecords.Observe(float64(len(records)))
	s.metricsManager.CounterEvaluations.WithLabelValues(source).Inc()

	if cacheKey != "" {
		s.storeSummary(ctx, cacheKey, summary)
	}

	return summary
}

func (s *Service) cachedSummary(ctx context.Context, key string) (Summary, bool) {
	summaryJson, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Warnf("progress service: get cached summary: %s", err)
		}
		return Summary{}, false
	}

	var summary Summary
	if err := json.Unmarshal(summaryJson, &summary); err != nil {
		log.Warnf("progress service: unmarshal cached summary: %s", err)
		return Summary{}, false
	}
	return summary, true
}

func (s *Service) storeSummary(ctx context.Context, key string, summary Summary) {
	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("progress service: marshal summary: %s", err)
		return
	}
	if err := s.cache.Set(ctx, key, summaryJson, s.cacheTTL); err != nil {
		log.Warnf("progress service: cache summary: %s", err)
	}
}

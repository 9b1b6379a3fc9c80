package core

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/telemetry"
)

// ClassifierService orchestrates the classification strategy chain. The
// strategies are tried in order; the first one that does not abstain wins.
// Typical order: external model, rule scorer, trivial keyword fallback.
type ClassifierService struct {
	strategies   []TextClassifier
	cache        CacheRepository
	logger       *zap.Logger
	telemetry    *telemetry.Provider
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewClassifierService creates a new classifier service
func NewClassifierService(
	strategies []TextClassifier,
	cache CacheRepository,
	logger *zap.Logger,
	tp *telemetry.Provider,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *ClassifierService {
	return &ClassifierService{
		strategies:   strategies,
		cache:        cache,
		logger:       logger,
		telemetry:    tp,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
	}
}

// hamResult is the fixed verdict for empty or whitespace-only input
func hamResult() *ClassificationResult {
	return &ClassificationResult{
		Label:      LabelHam,
		Score:      0.0,
		Reasons:    []string{},
		ModelUsed:  "empty_input",
		AnalyzedAt: time.Now(),
	}
}

// Classify runs a message through the strategy chain
func (s *ClassifierService) Classify(ctx context.Context, text string) (*ClassificationResult, error) {
	start := time.Now()

	// Empty input has a fixed verdict, not a computed one
	if strings.TrimSpace(text) == "" {
		return hamResult(), nil
	}

	if s.cacheEnabled && s.cache != nil {
		if entry, err := s.cache.Get(ctx, text); err == nil {
			s.logger.Debug("Cache hit for message", zap.Int("text_len", len(text)))
			s.telemetry.RecordCacheHit()
			return &ClassificationResult{
				Label:      entry.Label,
				Score:      entry.Score,
				Reasons:    entry.Reasons,
				ModelUsed:  "cache",
				AnalyzedAt: time.Now(),
			}, nil
		}
		s.telemetry.RecordCacheMiss()
	}

	result, err := s.runChain(ctx, text)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled && s.cache != nil {
		entry := &CacheEntry{
			Text:      text,
			Label:     result.Label,
			Score:     result.Score,
			Reasons:   result.Reasons,
			ModelUsed: result.ModelUsed,
			LastSeen:  time.Now(),
			ExpiresAt: time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	s.telemetry.RecordClassification(result.Label, time.Since(start))
	return result, nil
}

// runChain tries each strategy in order and uses the first present verdict.
// A strategy error is logged and treated as an abstention so the chain can
// degrade from the external model down to the rule scorer.
func (s *ClassifierService) runChain(ctx context.Context, text string) (*ClassificationResult, error) {
	for _, strategy := range s.strategies {
		result, err := strategy.Classify(ctx, text)
		if err != nil {
			s.logger.Warn("Classifier strategy failed, falling through",
				zap.String("strategy", strategy.Name()),
				zap.Error(err))
			continue
		}
		if result == nil {
			s.logger.Debug("Classifier strategy abstained",
				zap.String("strategy", strategy.Name()))
			continue
		}
		if result.ModelUsed == "" {
			result.ModelUsed = strategy.Name()
		}
		return result, nil
	}

	// The rule scorer never abstains, so this is unreachable with the
	// default chain. Keep a defined verdict anyway.
	s.logger.Warn("All classifier strategies abstained")
	return hamResult(), nil
}

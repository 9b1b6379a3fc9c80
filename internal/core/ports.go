package core

import (
	"context"
)

// TextClassifier is one strategy in the classification chain. A strategy
// that cannot produce a verdict for the given text abstains by returning
// (nil, nil); the orchestrator then moves on to the next strategy.
type TextClassifier interface {
	// Classify analyzes a message and returns a verdict, or (nil, nil) to abstain
	Classify(ctx context.Context, text string) (*ClassificationResult, error)

	// Name identifies the strategy in logs and results
	Name() string
}

// CacheRepository defines the interface for caching classification results
type CacheRepository interface {
	// Get retrieves a cached entry for a message text
	Get(ctx context.Context, text string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, text string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

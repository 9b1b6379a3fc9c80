package core

import (
	"time"
)

// Classification labels. Smishing is SMS-delivered phishing; ham is the
// benign class (term borrowed from spam-filtering literature).
const (
	LabelSmishing = "smishing"
	LabelHam      = "ham"
)

// FeatureSet holds everything the extractors derived from a single message.
// The five lists are the primary indicators; the scalar statistics feed the
// secondary scoring rules.
type FeatureSet struct {
	URLs     []string
	Emails   []string
	Numbers  []string
	Amounts  []string
	Keywords []string

	Length           int     // message length in runes
	UppercaseRatio   float64 // uppercase letters / all letters, 0 if no letters
	ExclamationCount int
	UrgencyPresent   bool
	IndicatorCount   int // non-empty primary categories (0..5)
}

// ClassificationResult represents the outcome of classifying one message
type ClassificationResult struct {
	Label      string
	Score      float64
	Reasons    []string
	ModelUsed  string
	AnalyzedAt time.Time
}

// IsSmishing reports whether the result carries the smishing label
func (r *ClassificationResult) IsSmishing() bool {
	return r.Label == LabelSmishing
}

// URLRiskResult represents the outcome of analyzing a single URL
type URLRiskResult struct {
	IsSuspicious bool
	IsShortened  bool
	Domain       string
	RiskScore    float64
}

// CacheEntry is a cached classification keyed by the exact message text
type CacheEntry struct {
	Text      string
	Label     string
	Score     float64
	Reasons   []string
	ModelUsed string
	LastSeen  time.Time
	ExpiresAt time.Time
}

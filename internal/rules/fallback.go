package rules

import (
	"context"
	"time"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/textproc"
)

// Fallback keyword verdict scores. Deliberately blunt: the fallback only
// runs when every richer strategy abstained.
const (
	fallbackSmishingScore = 0.6
	fallbackHamScore      = 0.0
)

// KeywordFallback is the last-resort strategy: any indicator keyword makes
// the message smishing, otherwise ham. It never abstains.
type KeywordFallback struct{}

// NewKeywordFallback creates the trivial keyword fallback strategy
func NewKeywordFallback() *KeywordFallback {
	return &KeywordFallback{}
}

// Name identifies the strategy in the classification chain
func (f *KeywordFallback) Name() string {
	return "keyword_fallback"
}

// Classify implements core.TextClassifier
func (f *KeywordFallback) Classify(_ context.Context, text string) (*core.ClassificationResult, error) {
	result := &core.ClassificationResult{
		Label:      core.LabelHam,
		Score:      fallbackHamScore,
		Reasons:    []string{},
		ModelUsed:  f.Name(),
		AnalyzedAt: time.Now(),
	}
	if len(textproc.ExtractKeywords(text)) > 0 {
		result.Label = core.LabelSmishing
		result.Score = fallbackSmishingScore
		result.Reasons = []string{ReasonKeyword}
	}
	return result, nil
}

// Package rules implements the weighted-rule smishing classifier: five
// primary indicator categories scored by count, six secondary statistical
// rules on the raw text, a clamped linear sum and a single decision
// threshold.
package rules

import (
	"context"
	"strings"
	"time"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/textproc"
)

// ModelVersion identifies the rule table in /model/info responses
const ModelVersion = "2.0.0"

// Reason tags, appended at most once per triggering rule. The Spanish names
// are the wire format consumed by existing clients of the original service.
const (
	ReasonURL         = "url_detectada"
	ReasonKeyword     = "palabra_clave_sospechosa"
	ReasonEmail       = "email_detectado"
	ReasonNumber      = "numero_detectado"
	ReasonAmount      = "monto_detectado"
	ReasonLongText    = "longitud_sospechosa"
	ReasonUppercase   = "mayusculas_excesivas"
	ReasonExclamation = "multiples_exclamaciones"
	ReasonUrgency     = "urgencia_detectada"
	ReasonCombined    = "combinacion_indicadores"
	ReasonVeryShort   = "mensaje_muy_corto"
)

// Weights is the immutable rule configuration: per-category weights for the
// primary indicators, the secondary rule weights and activation thresholds,
// and the classification threshold. Built once at startup, never mutated.
type Weights struct {
	URL     float64
	Keyword float64
	Email   float64
	Number  float64
	Amount  float64

	LongText    float64
	Uppercase   float64
	Exclamation float64
	Urgency     float64
	Combined    float64
	ShortText   float64 // penalty, applied as a negative contribution

	LongTextRunes      int
	UppercaseRatio     float64
	ExclamationMin     int
	CombinedIndicators int
	ShortTextRunes     int

	Threshold float64
}

// DefaultWeights returns the canonical rule table
func DefaultWeights() Weights {
	return Weights{
		URL:     0.35,
		Keyword: 0.18,
		Email:   0.12,
		Number:  0.08,
		Amount:  0.15,

		LongText:    0.15,
		Uppercase:   0.20,
		Exclamation: 0.15,
		Urgency:     0.12,
		Combined:    0.10,
		ShortText:   0.15,

		LongTextRunes:      120,
		UppercaseRatio:     0.15,
		ExclamationMin:     2,
		CombinedIndicators: 3,
		ShortTextRunes:     10,

		Threshold: 0.55,
	}
}

// Scorer is the deterministic rule classifier. It is stateless apart from
// its immutable weights and safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// NewDefaultScorer creates a scorer with the canonical rule table
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights())
}

// Name identifies the strategy in the classification chain
func (s *Scorer) Name() string {
	return "rule_scorer"
}

// Weights returns the scorer's rule table
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Classify implements core.TextClassifier. The rule scorer never abstains
// and never fails.
func (s *Scorer) Classify(_ context.Context, text string) (*core.ClassificationResult, error) {
	result := s.Score(text)
	return &result, nil
}

// Score classifies a message. Empty or whitespace-only input short-circuits
// to the fixed ham verdict; everything else is a pure function of the text.
func (s *Scorer) Score(text string) core.ClassificationResult {
	result := core.ClassificationResult{
		Label:      core.LabelHam,
		Score:      0.0,
		Reasons:    []string{},
		ModelUsed:  s.Name(),
		AnalyzedAt: time.Now(),
	}

	if strings.TrimSpace(text) == "" {
		return result
	}

	features := textproc.ExtractAll(text)

	score := 0.0
	w := s.weights

	// Primary categories: count times weight, one reason tag per category
	primaries := []struct {
		matches []string
		weight  float64
		reason  string
	}{
		{features.URLs, w.URL, ReasonURL},
		{features.Keywords, w.Keyword, ReasonKeyword},
		{features.Emails, w.Email, ReasonEmail},
		{features.Numbers, w.Number, ReasonNumber},
		{features.Amounts, w.Amount, ReasonAmount},
	}
	for _, p := range primaries {
		if len(p.matches) > 0 {
			score += float64(len(p.matches)) * p.weight
			result.Reasons = append(result.Reasons, p.reason)
		}
	}

	// Secondary rules, evaluated against the raw text statistics
	if features.Length > w.LongTextRunes {
		score += w.LongText
		result.Reasons = append(result.Reasons, ReasonLongText)
	}
	if features.UppercaseRatio > w.UppercaseRatio {
		score += w.Uppercase
		result.Reasons = append(result.Reasons, ReasonUppercase)
	}
	if features.ExclamationCount >= w.ExclamationMin {
		score += w.Exclamation
		result.Reasons = append(result.Reasons, ReasonExclamation)
	}
	if features.UrgencyPresent {
		score += w.Urgency
		result.Reasons = append(result.Reasons, ReasonUrgency)
	}
	if features.IndicatorCount >= w.CombinedIndicators {
		score += w.Combined
		result.Reasons = append(result.Reasons, ReasonCombined)
	}
	if features.Length < w.ShortTextRunes && features.IndicatorCount == 0 {
		score -= w.ShortText
		result.Reasons = append(result.Reasons, ReasonVeryShort)
	}

	result.Score = clamp01(score)
	if result.Score >= w.Threshold {
		result.Label = core.LabelSmishing
	}
	return result
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

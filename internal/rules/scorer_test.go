package rules_test

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/rules"
)

const epsilon = 1e-9

func TestScoreEmptyInput(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	for _, text := range []string{"", "   ", "\t\n  "} {
		result := scorer.Score(text)

		if result.Label != core.LabelHam {
			t.Errorf("Score(%q).Label = %q, want ham", text, result.Label)
		}
		if result.Score != 0.0 {
			t.Errorf("Score(%q).Score = %f, want 0.0", text, result.Score)
		}
		if len(result.Reasons) != 0 {
			t.Errorf("Score(%q).Reasons = %v, want empty", text, result.Reasons)
		}
		if result.ModelUsed != "rule_scorer" {
			t.Errorf("Score(%q).ModelUsed = %q, want rule_scorer", text, result.ModelUsed)
		}
	}
}

func TestScoreBenignMessage(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	result := scorer.Score("Hola, ¿cómo estás? Nos vemos mañana")

	if result.Label != core.LabelHam {
		t.Errorf("Label = %q, want ham", result.Label)
	}
	if result.Score != 0.0 {
		t.Errorf("Score = %f, want 0.0", result.Score)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("Reasons = %v, want empty", result.Reasons)
	}
}

func TestScoreSmishingMessage(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	result := scorer.Score("URGENT! You won $5000! Click bit.ly/prize now!")

	if result.Label != core.LabelSmishing {
		t.Fatalf("Label = %q, want smishing", result.Label)
	}
	if result.Score != 1.0 {
		t.Errorf("Score = %f, want clamped 1.0", result.Score)
	}
	if !result.IsSmishing() {
		t.Error("IsSmishing() = false, want true")
	}

	for _, reason := range []string{
		rules.ReasonURL,
		rules.ReasonKeyword,
		rules.ReasonNumber,
		rules.ReasonAmount,
		rules.ReasonUppercase,
		rules.ReasonExclamation,
		rules.ReasonUrgency,
		rules.ReasonCombined,
	} {
		if !containsReason(result.Reasons, reason) {
			t.Errorf("Reasons %v missing %q", result.Reasons, reason)
		}
	}
}

func TestScoreReasonOrder(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	result := scorer.Score("verifica tu cuenta en http://ejemplo-raro.net")

	want := []string{rules.ReasonURL, rules.ReasonKeyword}
	if !reflect.DeepEqual(result.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", result.Reasons, want)
	}

	// one URL at 0.35 plus two keywords at 0.18 each
	if math.Abs(result.Score-0.71) > epsilon {
		t.Errorf("Score = %f, want 0.71", result.Score)
	}
	if result.Label != core.LabelSmishing {
		t.Errorf("Label = %q, want smishing", result.Label)
	}
}

func TestScoreShortTextPenalty(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	result := scorer.Score("ok")

	if result.Label != core.LabelHam {
		t.Errorf("Label = %q, want ham", result.Label)
	}
	if result.Score != 0.0 {
		t.Errorf("Score = %f, want clamped 0.0", result.Score)
	}
	want := []string{rules.ReasonVeryShort}
	if !reflect.DeepEqual(result.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", result.Reasons, want)
	}
}

func TestScoreLongTextRule(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	long := ""
	for i := 0; i < 15; i++ {
		long += "nos vemos "
	}

	result := scorer.Score(long)

	if !containsReason(result.Reasons, rules.ReasonLongText) {
		t.Errorf("Reasons = %v, missing %q", result.Reasons, rules.ReasonLongText)
	}
	if math.Abs(result.Score-0.15) > epsilon {
		t.Errorf("Score = %f, want 0.15", result.Score)
	}
	if result.Label != core.LabelHam {
		t.Errorf("Label = %q, want ham", result.Label)
	}
}

func TestScoreThresholdInclusive(t *testing.T) {
	weights := rules.Weights{
		URL:                0.5,
		LongTextRunes:      10000,
		UppercaseRatio:     1.1,
		ExclamationMin:     1000,
		CombinedIndicators: 1000,
		ShortTextRunes:     0,
		Threshold:          0.5,
	}

	result := rules.NewScorer(weights).Score("visita bit.ly")
	if result.Score != 0.5 {
		t.Fatalf("Score = %f, want exactly 0.5", result.Score)
	}
	if result.Label != core.LabelSmishing {
		t.Errorf("Label = %q, want smishing at the threshold", result.Label)
	}

	weights.Threshold = 0.51
	result = rules.NewScorer(weights).Score("visita bit.ly")
	if result.Label != core.LabelHam {
		t.Errorf("Label = %q, want ham just below the threshold", result.Label)
	}
}

func TestScoreMonotonicUnderAddedIndicator(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	tests := []struct {
		name string
		base string
		add  string
	}{
		{
			name: "second url",
			base: "visita bit.ly",
			add:  " o tinyurl.com",
		},
		{
			name: "extra keyword",
			base: "gana un premio",
			add:  " gratis",
		},
		{
			name: "extra number",
			base: "llama al 999888777",
			add:  " o al 555666777",
		},
		{
			name: "extra amount",
			base: "deposita $500",
			add:  " y luego $200",
		},
		{
			name: "new category on keyword base",
			base: "gana un premio",
			add:  " http://bit.ly/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := scorer.Score(tt.base)
			after := scorer.Score(tt.base + tt.add)

			if after.Score < before.Score {
				t.Errorf("Score(%q) = %f dropped below Score(%q) = %f",
					tt.base+tt.add, after.Score, tt.base, before.Score)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := rules.NewDefaultScorer()
	text := "GRATIS!! Gana un premio, llama al 999888777"

	first := scorer.Score(text)
	second := scorer.Score(text)

	if first.Score != second.Score {
		t.Errorf("scores differ: %f vs %f", first.Score, second.Score)
	}
	if first.Label != second.Label {
		t.Errorf("labels differ: %q vs %q", first.Label, second.Label)
	}
	if !reflect.DeepEqual(first.Reasons, second.Reasons) {
		t.Errorf("reasons differ: %v vs %v", first.Reasons, second.Reasons)
	}
}

func TestClassifyNeverAbstains(t *testing.T) {
	scorer := rules.NewDefaultScorer()

	result, err := scorer.Classify(context.Background(), "cualquier texto")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if result == nil {
		t.Fatal("Classify returned nil result")
	}
}

func TestInfo(t *testing.T) {
	info := rules.NewDefaultScorer().Info()

	if info.Version != rules.ModelVersion {
		t.Errorf("Version = %q, want %q", info.Version, rules.ModelVersion)
	}
	if len(info.ActiveRules) != 11 {
		t.Errorf("ActiveRules has %d entries, want 11", len(info.ActiveRules))
	}
	if info.Weights["url"] != 0.35 {
		t.Errorf("Weights[url] = %f, want 0.35", info.Weights["url"])
	}
	if info.Weights["short_text_penalty"] != -0.15 {
		t.Errorf("Weights[short_text_penalty] = %f, want -0.15", info.Weights["short_text_penalty"])
	}
	if info.Thresholds["classification"] != 0.55 {
		t.Errorf("Thresholds[classification] = %f, want 0.55", info.Thresholds["classification"])
	}
}

func TestKeywordFallback(t *testing.T) {
	fallback := rules.NewKeywordFallback()

	result, err := fallback.Classify(context.Background(), "reclama tu premio")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if result.Label != core.LabelSmishing {
		t.Errorf("Label = %q, want smishing for keyword-bearing text", result.Label)
	}
	if !containsReason(result.Reasons, rules.ReasonKeyword) {
		t.Errorf("Reasons = %v, missing %q", result.Reasons, rules.ReasonKeyword)
	}

	result, err = fallback.Classify(context.Background(), "nos vemos luego")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if result.Label != core.LabelHam {
		t.Errorf("Label = %q, want ham without keywords", result.Label)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}

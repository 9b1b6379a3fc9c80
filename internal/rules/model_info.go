package rules

// ModelInfo describes the active rule table for diagnostics endpoints
type ModelInfo struct {
	Version     string             `json:"version"`
	ActiveRules []string           `json:"active_rules"`
	Weights     map[string]float64 `json:"weights"`
	Thresholds  map[string]float64 `json:"thresholds"`
}

// Info reports the scorer's version, active rules, weights and thresholds
func (s *Scorer) Info() ModelInfo {
	w := s.weights
	return ModelInfo{
		Version: ModelVersion,
		ActiveRules: []string{
			"url_detection",
			"keyword_detection",
			"email_detection",
			"number_detection",
			"amount_detection",
			"long_text",
			"uppercase_ratio",
			"exclamation_burst",
			"urgency_vocabulary",
			"indicator_combination",
			"short_text_penalty",
		},
		Weights: map[string]float64{
			"url":                w.URL,
			"keyword":            w.Keyword,
			"email":              w.Email,
			"number":             w.Number,
			"amount":             w.Amount,
			"long_text":          w.LongText,
			"uppercase":          w.Uppercase,
			"exclamation":        w.Exclamation,
			"urgency":            w.Urgency,
			"combined":           w.Combined,
			"short_text_penalty": -w.ShortText,
		},
		Thresholds: map[string]float64{
			"classification":  w.Threshold,
			"long_text_runes": float64(w.LongTextRunes),
			"uppercase_ratio": w.UppercaseRatio,
		},
	}
}

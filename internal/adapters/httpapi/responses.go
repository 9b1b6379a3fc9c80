package httpapi

// ClassifyRequest is the body of POST /classify
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse is the payload returned for a classified message
type ClassifyResponse struct {
	Label   string   `json:"label"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
	Text    string   `json:"text"`
}

// AnalyzeURLRequest is the body of POST /api/v1/urls/analyze
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// AnalyzeURLResponse is the payload returned for an analyzed URL
type AnalyzeURLResponse struct {
	URL          string  `json:"url"`
	Domain       string  `json:"domain"`
	IsSuspicious bool    `json:"is_suspicious"`
	IsShortened  bool    `json:"is_shortened"`
	RiskScore    float64 `json:"risk_score"`
}

// HealthResponse is the payload of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the payload for client and server errors
type ErrorResponse struct {
	Detail string `json:"detail"`
}

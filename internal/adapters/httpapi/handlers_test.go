package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/adapters/httpapi"
	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/rules"
	"github.com/shieldsms/smishing-filter/internal/urlcheck"
)

const testMaxTextLength = 160

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	scorer := rules.NewDefaultScorer()
	service := core.NewClassifierService(
		[]core.TextClassifier{scorer, rules.NewKeywordFallback()},
		nil, zap.NewNop(), nil, false, 0,
	)
	analyzer := urlcheck.NewAnalyzer(urlcheck.DefaultCacheCapacity, nil)
	handler := httpapi.NewHandler(service, scorer, analyzer, zap.NewNop(), testMaxTextLength)

	router := gin.New()
	httpapi.SetupRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp httpapi.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Service != "smishing-filter" {
		t.Errorf("response = %+v, want ok/smishing-filter", resp)
	}
}

func TestClassifySmishing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/classify",
		`{"text": "URGENT! You won $5000! Click bit.ly/prize now!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp httpapi.ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Label != core.LabelSmishing {
		t.Errorf("label = %q, want smishing", resp.Label)
	}
	if resp.Score < 0.55 {
		t.Errorf("score = %f, want >= 0.55", resp.Score)
	}
	if len(resp.Reasons) == 0 {
		t.Error("reasons are empty, want at least one tag")
	}
	if resp.Text != "URGENT! You won $5000! Click bit.ly/prize now!" {
		t.Errorf("text = %q, want the input echoed back", resp.Text)
	}
}

func TestClassifyHam(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/classify",
		`{"text": "Hola, nos vemos en la tarde"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp httpapi.ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Label != core.LabelHam {
		t.Errorf("label = %q, want ham", resp.Label)
	}
	if resp.Score != 0.0 {
		t.Errorf("score = %f, want 0.0", resp.Score)
	}
}

func TestClassifyValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"text": `},
		{"missing field", `{}`},
		{"blank text", `{"text": "   \n\t "}`},
		{"oversized text", `{"text": "` + strings.Repeat("a", testMaxTextLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/classify", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", rec.Code)
			}

			var resp httpapi.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Detail == "" {
				t.Error("error detail is empty")
			}
		})
	}
}

func TestClassifyV1Route(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classify",
		`{"text": "gana un premio GRATIS!! llama al 999888777"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp httpapi.ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Label != core.LabelSmishing {
		t.Errorf("label = %q, want smishing", resp.Label)
	}
}

func TestModelInfoEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/model/info", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var info rules.ModelInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if info.Version != rules.ModelVersion {
		t.Errorf("version = %q, want %q", info.Version, rules.ModelVersion)
	}
	if len(info.ActiveRules) == 0 {
		t.Error("active_rules is empty")
	}
}

func TestAnalyzeURLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/urls/analyze",
		`{"url": "http://bit.ly/malware"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp httpapi.AnalyzeURLResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Domain != "bit.ly" {
		t.Errorf("domain = %q, want bit.ly", resp.Domain)
	}
	if !resp.IsShortened || !resp.IsSuspicious {
		t.Errorf("flags = shortened:%t suspicious:%t, want both true", resp.IsShortened, resp.IsSuspicious)
	}
	if resp.RiskScore != 0.4 {
		t.Errorf("risk_score = %f, want 0.4", resp.RiskScore)
	}
}

func TestAnalyzeURLValidation(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{`{}`, `{"url": "  "}`, `{"url": `} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/urls/analyze", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status for body %q = %d, want 422", body, rec.Code)
		}
	}
}

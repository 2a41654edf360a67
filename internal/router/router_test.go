package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/saltybytes-picks/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		EnvVars: config.EnvVars{
			Port:          "8080",
			SearchTimeout: time.Second,
			CacheTTL:      10 * time.Minute,
			RateLimitRPS:  100,
		},
		Scoring: config.DefaultScoring(),
	}
}

func TestSetupRouter_Routes(t *testing.T) {
	r := SetupRouter(testConfig())

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/ping", http.StatusOK},
		{"/recommend?calories=500", http.StatusOK},
		{"/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestSetupRouter_UnconfiguredUsesFallback(t *testing.T) {
	r := SetupRouter(testConfig())

	req := httptest.NewRequest("GET", "/recommend?calories=500&activity=moderate&taste=balanced", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["usedCSE"] != false {
		t.Errorf("usedCSE = %v, want false", body["usedCSE"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestSetupRouter_CORS(t *testing.T) {
	cfg := testConfig()
	cfg.EnvVars.AllowedOrigins = []string{"https://picks.example"}
	r := SetupRouter(cfg)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://picks.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://picks.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestSetupRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.EnvVars.RateLimitRPS = 1
	r := SetupRouter(cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/recommend", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want 200 then 429", codes)
	}
}

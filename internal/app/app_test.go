package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanic-dash/internal/config"
	"titanic-dash/internal/domain"
	"titanic-dash/internal/middleware"
)

const passengersCSV = `PassengerId,Survived,Pclass,Sex,Age
1,0,3,male,22
2,1,1,female,38
3,1,3,female,26
4,1,1,female,35
5,0,3,male,35
6,0,3,male,
`

func testConfig(t *testing.T, datasetPath string) *config.Config {
	t.Helper()
	return &config.Config{
		Dataset:            config.DatasetConfig{Path: datasetPath, Engine: config.EngineFrame},
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestApp(t *testing.T) (*App, http.Handler) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "titanic.csv")
	require.NoError(t, os.WriteFile(p, []byte(passengersCSV), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a, err := New(ctx, Deps{Cfg: testConfig(t, p)})
	require.NoError(t, err)
	return a, a.Router(ctx)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNew_LoadsTable(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, 5, a.Survival.Table().Len())
}

func TestNew_MissingDatasetIsUnavailable(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.csv"))
	_, err := New(context.Background(), Deps{Cfg: cfg})

	var unavailable *domain.DataUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestRouter_Routes(t *testing.T) {
	_, h := newTestApp(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantType   string
	}{
		{name: "health", target: "/healthz", wantStatus: http.StatusOK, wantType: "application/json"},
		{name: "openapi", target: "/openapi.json", wantStatus: http.StatusOK, wantType: "application/json"},
		{name: "summary", target: "/api/v1/summary", wantStatus: http.StatusOK, wantType: "application/json"},
		{name: "passengers", target: "/api/v1/passengers", wantStatus: http.StatusOK, wantType: "application/json"},
		{name: "controls", target: "/api/v1/controls", wantStatus: http.StatusOK, wantType: "application/json"},
		{name: "dashboard", target: "/ui", wantStatus: http.StatusOK, wantType: "text/html"},
		{name: "chart svg", target: "/ui/chart.svg", wantStatus: http.StatusOK, wantType: "image/svg+xml"},
		{name: "bad filter", target: "/api/v1/summary?deck=Steerage", wantStatus: http.StatusBadRequest, wantType: "application/json"},
		{name: "unknown", target: "/nope", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantType)
			}
			assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestRouter_RootRedirects(t *testing.T) {
	_, h := newTestApp(t)
	rec := get(t, h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/ui", rec.Header().Get("Location"))
}

func TestRouter_SummaryUsesLoadedTable(t *testing.T) {
	_, h := newTestApp(t)
	rec := get(t, h, "/api/v1/summary?souls=Gentlemen")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total    int `json:"total"`
		Survived int `json:"survived"`
		Perished int `json:"perished"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 0, body.Survived)
	assert.Equal(t, 2, body.Perished)
}

func TestRouter_CORSOnAPI(t *testing.T) {
	_, h := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/controls", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

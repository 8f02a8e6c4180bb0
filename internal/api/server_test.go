package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/realty-insights/internal/assistant"
	"github.com/sells-group/realty-insights/internal/config"
	"github.com/sells-group/realty-insights/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Data.UploadDir = filepath.Join(t.TempDir(), "media")
	cfg.Server.MaxUploadMB = 1
	return cfg
}

func testServer(t *testing.T) (*Server, *assistant.Service) {
	t.Helper()
	svc := assistant.New(nil)
	return NewServer(svc, testConfig(t)), svc
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestInit(t *testing.T) {
	s, svc := testServer(t)
	require.True(t, svc.LoadFromFile(context.Background(), writeCSV(t)))

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/init/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Data initialized successfully", decode[MessageResponse](t, rec).Message)
	assert.Equal(t, []string{"Wakad", "Aundh", "Akurdi"}, svc.ListAreas())
}

func TestAnalyze(t *testing.T) {
	s, _ := testServer(t)

	for _, path := range []string{"/api/analyze/", "/api/analyze"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"query":"Analyze Wakad prices"}`))
			rec := do(t, s, req)

			require.Equal(t, http.StatusOK, rec.Code)
			resp := decode[model.Response](t, rec)
			assert.Equal(t, model.ResponseTypeAnalysis, resp.Type)
			assert.Equal(t, "Wakad", resp.Area)
			assert.Contains(t, resp.Summary, "PRICE ANALYSIS: WAKAD")
			require.NotNil(t, resp.ChartData)
			assert.Len(t, resp.ChartData.Labels, 4)
		})
	}
}

func TestAnalyze_Comparison(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/", strings.NewReader(`{"query":"Wakad vs Akurdi"}`))
	rec := do(t, s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	assert.Equal(t, "comparison", raw["type"])
	assert.Contains(t, raw, "comparison_data")
	assert.NotContains(t, raw, "chart_data")
}

func TestAnalyze_EmptyBody(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ResponseTypeInfo, decode[model.Response](t, rec).Type)
}

func TestAnalyze_InvalidBody(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze/", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decode[ErrorResponse](t, rec).Error)
}

func TestAreas(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/areas/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Wakad", "Aundh", "Akurdi"}, decode[AreasResponse](t, rec).Areas)
}

func TestTestConnection(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/test/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	h := decode[assistant.Health](t, rec)
	assert.Equal(t, "success", h.Status)
	assert.True(t, h.DataAvailable)
	assert.Equal(t, 12, h.Records)
}

func TestUpload(t *testing.T) {
	s, svc := testServer(t)

	rec := do(t, s, uploadRequest(t, "file", "market.csv", "year,area,price,demand\n2023,Baner,7600000,8.1\n"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "File uploaded successfully", decode[MessageResponse](t, rec).Message)
	assert.Equal(t, []string{"Baner"}, svc.ListAreas())
	assert.FileExists(t, filepath.Join(s.uploadDir, "market.csv"))
}

func TestUpload_StripsDirectories(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, uploadRequest(t, "file", "../../escape.csv", "year,area,price,demand\n2023,Baner,1,2\n"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.FileExists(t, filepath.Join(s.uploadDir, "escape.csv"))
}

func TestUpload_NoFile(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, uploadRequest(t, "other", "market.csv", "x"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no file provided", decode[ErrorResponse](t, rec).Error)
}

func TestUpload_NotMultipart(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/upload/", strings.NewReader("plain")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_UnparseableFallsBack(t *testing.T) {
	s, svc := testServer(t)

	rec := do(t, s, uploadRequest(t, "file", "notes.txt", "hello"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File upload failed", decode[ErrorResponse](t, rec).Error)
	assert.Equal(t, []string{"Wakad", "Aundh", "Akurdi"}, svc.ListAreas())
}

func TestUpload_NonFiniteFallsBack(t *testing.T) {
	s, svc := testServer(t)

	rec := do(t, s, uploadRequest(t, "file", "market.csv",
		"year,area,price,demand\n2020,Baner,NaN,7\n2021,Baner,6000000,Inf\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Wakad", "Aundh", "Akurdi"}, svc.ListAreas())

	body, err := json.Marshal(AnalyzeRequest{Query: "tell me about wakad"})
	require.NoError(t, err)
	rec = do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ResponseTypeAnalysis, decode[model.Response](t, rec).Type)
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	writeJSON(rec, http.StatusOK, map[string]float64{"price": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "internal server error", decode[ErrorResponse](t, rec).Error)
}

func TestUpload_TooLarge(t *testing.T) {
	s, _ := testServer(t)

	big := strings.Repeat("x", 2<<20)
	rec := do(t, s, uploadRequest(t, "file", "big.csv", big))

	assert.Contains(t, []int{http.StatusBadRequest, http.StatusRequestEntityTooLarge}, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.RateLimit = 0.001
	cfg.Server.Burst = 1
	s := NewServer(assistant.New(nil), cfg)

	first := do(t, s, httptest.NewRequest(http.MethodGet, "/api/areas/", nil))
	second := do(t, s, httptest.NewRequest(http.MethodGet, "/api/areas/", nil))
	health := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "rate limit exceeded", decode[ErrorResponse](t, second).Error)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := do(t, s, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s, _ := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	s, _ := testServer(t)

	err := s.Run(context.Background(), "256.0.0.1:bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api: listen")
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,area,price,demand\n2020,Baner,1,2\n"), 0o600))
	return path
}

package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/config"
	"github.com/yigit/airport/internal/seed"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.MaxUploadMB = 1
	cfg.Client.Host = "localhost"
	cfg.Client.Port = "5173"
	cfg.Database.Driver = config.DriverMemory
	cfg.Database.Seed = true
	cfg.Storage.PublicPath = t.TempDir()
	cfg.Storage.PublicURL = "/public"
	return cfg
}

func newApp(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	lgr := zerolog.Nop()

	store, err := SetupStore(context.Background(), cfg, lgr)
	if err != nil {
		t.Fatalf("SetupStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	deps, err := BuildDependencies(cfg, store, lgr)
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	return SetupHandler(cfg, SetupRouter(cfg, deps, lgr)), cfg
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func modelForm(t *testing.T, code, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	_ = w.WriteField("code", code)
	_ = w.WriteField("capacity", "180")
	_ = w.WriteField("weight", "73.5")
	part, err := w.CreateFormFile("image_path", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("png-bytes"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestHealthAndSeededData(t *testing.T) {
	h, _ := newApp(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d: %s", rec.Code, rec.Body)
	}
	var health dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" || health.Storage != config.DriverMemory {
		t.Errorf("unexpected health %+v", health)
	}

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/syndicate", nil))
	var syndicates []models.Syndicate
	if err := json.Unmarshal(rec.Body.Bytes(), &syndicates); err != nil {
		t.Fatalf("decode syndicates: %v", err)
	}
	if len(syndicates) != len(seed.DefaultSyndicates) {
		t.Errorf("expected the seeded syndicates, got %d", len(syndicates))
	}
}

func TestAirplaneModelUploadFlow(t *testing.T) {
	h, cfg := newApp(t)

	body, contentType := modelForm(t, "A320", "a320.png")
	req := httptest.NewRequest(http.MethodPost, "/api/airplaneModel", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(t, h, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var created dto.CreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.Storage.PublicPath, "a320.png")); err != nil {
		t.Fatalf("expected the picture on disk: %v", err)
	}
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/public/a320.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png-bytes" {
		t.Errorf("expected the picture to be served, got %d %q", rec.Code, rec.Body.String())
	}

	// Same code and same picture
	body, contentType = modelForm(t, "A320", "a320.png")
	req = httptest.NewRequest(http.MethodPost, "/api/airplaneModel", body)
	req.Header.Set("Content-Type", contentType)
	rec = do(t, h, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a duplicate, got %d: %s", rec.Code, rec.Body)
	}
	var dup dto.DuplicateModelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &dup); err != nil {
		t.Fatalf("decode duplicate: %v", err)
	}
	if !dup.Code || !dup.ImagePath {
		t.Errorf("expected both fields flagged, got %+v", dup)
	}

	airplane := strings.NewReader(`{"model_id":"` + created.ID.String() + `"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/airplane", airplane)
	req.Header.Set("Content-Type", "application/json")
	if rec = do(t, h, req); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for the airplane, got %d: %s", rec.Code, rec.Body)
	}

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/completeAirplaneModel/"+created.ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var complete models.AirplaneModelWithTechsAndAirplanes
	if err := json.Unmarshal(rec.Body.Bytes(), &complete); err != nil {
		t.Fatalf("decode complete model: %v", err)
	}
	if len(complete.AirplaneIDs) != 1 || len(complete.TechnicianProIDs) != 0 {
		t.Errorf("unexpected aggregate %+v", complete)
	}

	rec = do(t, h, httptest.NewRequest(http.MethodDelete, "/api/airplaneModel/"+created.ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d: %s", rec.Code, rec.Body)
	}
	if _, err := os.Stat(filepath.Join(cfg.Storage.PublicPath, "a320.png")); !os.IsNotExist(err) {
		t.Errorf("expected the picture to be removed, got %v", err)
	}
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/airplane", nil))
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected the airplanes to be deleted with their model, got %s", rec.Body)
	}
}

func TestNotFoundEnvelope(t *testing.T) {
	h, _ := newApp(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/syndicate/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Success || resp.Error == nil {
		t.Errorf("expected an error envelope, got %s", rec.Body)
	}
}

func TestCORSAllowsOnlyTheClient(t *testing.T) {
	h, cfg := newApp(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/flight", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		return do(t, h, req)
	}

	rec := preflight(cfg.ClientOrigin())
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != cfg.ClientOrigin() {
		t.Errorf("expected the client origin to be allowed, got %q", got)
	}

	rec = preflight("http://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected other origins to be refused, got %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newApp(t)

	do(t, h, httptest.NewRequest(http.MethodGet, "/api/location", nil))
	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `airport_http_requests_total{endpoint="/api/location",method="GET",status_code="200"} 1`) {
		t.Errorf("expected the request to be counted, got:\n%s", rec.Body)
	}
}

package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/controllers"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/repositories/memory"
	"github.com/yigit/airport/internal/app/routes"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/pkg/filestorage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingPinger struct{}

func (failingPinger) Ping(ctx context.Context) error { return context.DeadlineExceeded }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	files, err := filestorage.NewLocalStorage(t.TempDir(), "/public")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	store := memory.NewStore()
	svc := services.New(store, files)

	router := gin.New()
	routes.SetupRouter(router, &routes.Controllers{
		AirplaneModel: controllers.NewAirplaneModelController(svc.AirplaneModel),
		Airplane:      controllers.NewAirplaneController(svc.Airplane),
		Staff:         controllers.NewStaffController(svc.Staff),
		Testing:       controllers.NewTestingController(svc.Testing),
		Flight:        controllers.NewFlightController(svc.Flight),
		Reference:     controllers.NewReferenceController(svc.Reference),
		Health:        controllers.NewHealthController(store, "memory", nil),
	})
	return router
}

func send(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func create(t *testing.T, router http.Handler, path string, body any) models.ID {
	t.Helper()
	w := send(t, router, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d: %s", path, w.Code, w.Body)
	}
	return decode[dto.CreatedResponse](t, w).ID
}

func TestStaffEndpoints(t *testing.T) {
	router := newRouter(t)

	locationID := create(t, router, "/api/location", map[string]any{
		"country_abbreviation": "tr",
		"country":              "Turkey",
		"state":                "Istanbul",
		"city":                 "Istanbul",
		"street":               "Ataturk Cd.",
		"number":               12,
	})
	syndicateID := create(t, router, "/api/syndicate", map[string]any{"name": "Mechanics"})

	technicianID := create(t, router, "/api/employeeTechnician", map[string]any{
		"name":              "Ayse Kaya",
		"house_location_id": locationID,
		"phone_number":      "+90 555 000 1122",
		"salary":            4200,
		"syndicate_id":      syndicateID,
	})

	technicians := decode[[]models.Employee](t, send(t, router, http.MethodGet, "/api/employeesTechnician", nil))
	if len(technicians) != 1 || technicians[0].ID != technicianID {
		t.Errorf("expected the hired technician, got %+v", technicians)
	}
	others := decode[[]models.Employee](t, send(t, router, http.MethodGet, "/api/employeesNotTechnician", nil))
	if len(others) != 0 {
		t.Errorf("expected no plain employees, got %+v", others)
	}

	w := send(t, router, http.MethodGet, "/api/technician_pro_at_model", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a filter, got %d", w.Code)
	}

	w = send(t, router, http.MethodGet, "/api/completeTechnician/"+technicianID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	complete := decode[models.TechnicianInfoWithTestsAndModels](t, w)
	if complete.TechnicianID != technicianID || complete.SyndicateID != syndicateID {
		t.Errorf("unexpected technician %+v", complete)
	}
	if complete.TestsMadeIDs == nil || complete.ModelsProIDs == nil {
		t.Errorf("expected empty id lists, got %+v", complete)
	}
}

func TestEmployeeRejectsInvalidPhone(t *testing.T) {
	router := newRouter(t)

	w := send(t, router, http.MethodPost, "/api/employee", map[string]any{
		"name":              "Can",
		"house_location_id": "1",
		"phone_number":      "call me",
		"salary":            10,
		"syndicate_id":      "1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Error.Field != "PhoneNumber" {
		t.Errorf("expected the phone number to be flagged, got %+v", resp.Error)
	}
}

func TestTestMadeRejectsReversedDates(t *testing.T) {
	router := newRouter(t)

	w := send(t, router, http.MethodPost, "/api/testMade", map[string]any{
		"score":             90,
		"start_date":        "2024-05-02T10:00:00Z",
		"finish_date":       "2024-05-01T10:00:00Z",
		"airplane_id":       "1",
		"integrity_test_id": "1",
		"technician_id":     "1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body)
	}
}

func TestMissingResourcesAreNotFound(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{
		"/api/completeFlight/nope",
		"/api/completeTest/nope",
		"/api/completeAirplane/nope",
		"/api/airplaneModel/nope",
		"/api/location/nope",
	} {
		if w := send(t, router, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d: %s", path, w.Code, w.Body)
		}
	}
}

func TestHealthReportsUnavailableStorage(t *testing.T) {
	router := gin.New()
	router.GET("/health", controllers.NewHealthController(failingPinger{}, "postgres", nil).Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body)
	}
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"custom not found", apperrors.NewResourceNotFoundError("flight not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "flight not found"},
		{"wrapped not found", fmt.Errorf("read: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
		{"already exists", fmt.Errorf("x: %w", apperrors.ErrResourceAlreadyExists), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
		{"conflict", apperrors.NewConflictError("employee is already a technician"), http.StatusConflict, dto.ErrorCodeConflict, "employee is already a technician"},
		{"validation", fmt.Errorf("%w: score", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"bad request", apperrors.NewBadRequestError("technician_id or model_id is required"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
		{"storage", fmt.Errorf("ping: %w", apperrors.ErrStorageUnavailable), http.StatusServiceUnavailable, dto.ErrorCodeServiceUnavailable, "Storage unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success || body.Error == nil {
				t.Fatalf("expected an error envelope, got %s", w.Body.String())
			}
			if body.Error.Code != tt.code || body.Error.Message != tt.message {
				t.Errorf("got code %s message %q", body.Error.Code, body.Error.Message)
			}
		})
	}
}

type bindTarget struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Capacity int    `form:"capacity" json:"capacity" binding:"gt=0"`
}

func TestBindRequest(t *testing.T) {
	router := gin.New()
	router.POST("/bind", func(c *gin.Context) {
		var req bindTarget
		if !BindRequest(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bind", nil)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("expected a validation error, got %s", body.Error.Code)
	}
}

func TestMetrics(t *testing.T) {
	reg := metrics.NewRegistry(prometheus.NewRegistry())
	router := gin.New()
	router.Use(Metrics(reg), RequestLogger())
	router.GET("/api/flight/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/api/flight/1", "/api/flight/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/api/flight/:id", http.MethodGet, "204")); got != 2 {
		t.Errorf("expected 2 requests on the flight route, got %v", got)
	}
	if got := testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")); got != 1 {
		t.Errorf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.ToFloat64(reg.HTTPRequestsInFlight); got != 0 {
		t.Errorf("expected no requests in flight, got %v", got)
	}
}

func TestBindRequestCustomRules(t *testing.T) {
	router := gin.New()
	router.POST("/location", func(c *gin.Context) {
		var req dto.LocationRequest
		if !BindRequest(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(abbreviation string) *httptest.ResponseRecorder {
		form := url.Values{
			"country_abbreviation": {abbreviation},
			"country":              {"Turkey"},
			"state":                {"Istanbul"},
			"city":                 {"Istanbul"},
			"street":               {"Havalimani"},
			"number":               {"1"},
		}
		req := httptest.NewRequest(http.MethodPost, "/location", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := post("tr"); w.Code != http.StatusNoContent {
		t.Errorf("expected a two letter code to bind, got %d: %s", w.Code, w.Body)
	}

	w := post("TURK")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Field != "CountryAbbreviation" {
		t.Errorf("expected the abbreviation to be flagged, got %+v", body.Error)
	}
}

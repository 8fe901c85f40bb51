package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rosN100/lohono-fizzy-search/internal/dataset"
	"github.com/rosN100/lohono-fizzy-search/internal/search"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	snap := dataset.NewSnapshot([]dataset.Record{
		{
			Identifier: "Aurelia Villa C",
			Date:       time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			Price:      20000,
			Status:     "available",
		},
	})
	return New(search.NewService(snap, search.NewMatcher(search.DefaultThreshold)))
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q; want healthy", body["status"])
	}
}

func TestRootBanner(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestRoutesRegistered(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/properties/search?property_name=Aurelia&check_date=2025-10-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

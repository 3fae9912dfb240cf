package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"autokeep/api/internal/model"
)

func TestListCarBrands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewReferenceHandler().RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reference/car-brands", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var brands []model.CarBrand
	if err := json.Unmarshal(w.Body.Bytes(), &brands); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(brands) == 0 {
		t.Fatalf("expected brands")
	}
	for _, b := range brands {
		if b.Name == "" || len(b.Models) == 0 {
			t.Errorf("brand %q has no models", b.Name)
		}
	}
}

func TestListPresets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMaintenanceHandler(nil, nil)
	r.GET("/api/v1/maintenance/presets", h.ListPresets)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/presets", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var presets []model.MaintenancePreset
	if err := json.Unmarshal(w.Body.Bytes(), &presets); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(presets) == 0 {
		t.Fatalf("expected presets")
	}
	for _, p := range presets {
		if p.Name == "" {
			t.Errorf("preset with empty name")
		}
		if p.IntervalKM == nil && p.IntervalMonths == nil {
			t.Errorf("preset %q has no interval at all", p.Name)
		}
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jupiarasanches/gestao-processos3/service"
	"github.com/xuri/excelize/v2"
)

func newDashboardRouter() *gin.Engine {
	analytics := service.NewAnalytics(
		service.NewProcessStore(service.SeedProcesses()),
		service.NewTechnicianStore(service.SeedTechnicians()),
	)
	h := NewDashboardHandler(analytics)

	router := gin.New()
	router.GET("/api/dashboard/stats", h.Stats)
	router.GET("/api/reports/analytics", h.Report)
	router.GET("/api/reports/export", h.ExportReport)
	return router
}

func TestDashboardStats(t *testing.T) {
	router := newDashboardRouter()

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats service.DashboardStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if stats.TotalProcesses != 7 || stats.ActiveProcesses != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if len(stats.ByType) != 8 {
		t.Errorf("Expected 8 type cards, got %d", len(stats.ByType))
	}
}

func TestReport(t *testing.T) {
	router := newDashboardRouter()

	req := httptest.NewRequest("GET", "/api/reports/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var report service.ReportAnalytics
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if report.CompletionRate != 29 {
		t.Errorf("Expected completion rate 29, got %d", report.CompletionRate)
	}
	if len(report.Monthly) != 6 {
		t.Errorf("Expected 6 monthly points, got %d", len(report.Monthly))
	}
}

func TestExportReport(t *testing.T) {
	router := newDashboardRouter()

	req := httptest.NewRequest("GET", "/api/reports/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") || !strings.Contains(cd, "relatorio-") {
		t.Errorf("Unexpected content disposition: %s", cd)
	}

	// The body must be a readable workbook
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Exported body is not a workbook: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Relatório", "B2"); v != "7" {
		t.Errorf("Expected total 7 in workbook, got %q", v)
	}
}

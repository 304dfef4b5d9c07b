package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jupiarasanches/gestao-processos3/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	analytics *service.Analytics
}

func NewDashboardHandler(analytics *service.Analytics) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Stats returns the landing-page dashboard aggregates
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Dashboard())
}

// Report returns the full report analytics
func (h *DashboardHandler) Report(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Report())
}

// ExportReport streams the report analytics as a spreadsheet download
func (h *DashboardHandler) ExportReport(c *gin.Context) {
	data, err := h.analytics.ExportReportXLSX()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	filename := fmt.Sprintf("relatorio-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

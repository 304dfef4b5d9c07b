package service

import (
	"testing"
)

func seededAnalytics() *Analytics {
	return NewAnalytics(
		NewProcessStore(SeedProcesses()),
		NewTechnicianStore(SeedTechnicians()),
	)
}

func TestAnalyticsDashboard(t *testing.T) {
	stats := seededAnalytics().Dashboard()

	if stats.TotalProcesses != 7 {
		t.Errorf("Expected 7 processes, got %d", stats.TotalProcesses)
	}
	// Seed: 2x Em Análise, 2x Documentação, 1x Concluído, 1x Aprovado,
	// 1x Aguardando Análise
	if stats.ActiveProcesses != 4 {
		t.Errorf("Expected 4 active, got %d", stats.ActiveProcesses)
	}
	if stats.CompletedProcesses != 2 {
		t.Errorf("Expected 2 completed, got %d", stats.CompletedProcesses)
	}
	if stats.PendingProcesses != 1 {
		t.Errorf("Expected 1 pending, got %d", stats.PendingProcesses)
	}

	if len(stats.ByType) != 8 {
		t.Fatalf("Expected 8 type cards, got %d", len(stats.ByType))
	}
	if stats.ByType[0].Name != "SIMCAR" {
		t.Errorf("Expected SIMCAR first, got %s", stats.ByType[0].Name)
	}
	for _, b := range stats.ByType {
		switch b.Name {
		case "PRA":
			if b.Count != 0 || b.Percentage != 0 {
				t.Errorf("Expected empty PRA card, got %+v", b)
			}
		default:
			if b.Count != 1 || b.Percentage != 14 {
				t.Errorf("Expected count 1 / 14%% for %s, got %+v", b.Name, b)
			}
		}
	}
}

func TestAnalyticsDashboardEmpty(t *testing.T) {
	analytics := NewAnalytics(NewProcessStore(nil), NewTechnicianStore(nil))

	stats := analytics.Dashboard()
	if stats.TotalProcesses != 0 {
		t.Errorf("Expected 0 processes, got %d", stats.TotalProcesses)
	}
	for _, b := range stats.ByType {
		if b.Percentage != 0 {
			t.Errorf("Expected 0%% on empty registry, got %d for %s", b.Percentage, b.Name)
		}
	}
}

func TestAnalyticsReport(t *testing.T) {
	r := seededAnalytics().Report()

	if r.TotalProcesses != 7 {
		t.Errorf("Expected 7 processes, got %d", r.TotalProcesses)
	}
	// The report groups Documentação neither as active nor pending
	if r.ActiveProcesses != 2 {
		t.Errorf("Expected 2 active, got %d", r.ActiveProcesses)
	}
	if r.CompletedProcesses != 2 {
		t.Errorf("Expected 2 completed, got %d", r.CompletedProcesses)
	}
	// round(2/7*100) = 29
	if r.CompletionRate != 29 {
		t.Errorf("Expected completion rate 29, got %d", r.CompletionRate)
	}

	// ByType keeps first-seen registry order
	if len(r.ByType) != 7 {
		t.Fatalf("Expected 7 observed types, got %d", len(r.ByType))
	}
	if r.ByType[0].Name != "SIMCAR" || r.ByType[1].Name != "PEF" {
		t.Errorf("Unexpected type order: %s, %s", r.ByType[0].Name, r.ByType[1].Name)
	}

	if len(r.ByStatus) != 5 {
		t.Fatalf("Expected 5 observed statuses, got %d", len(r.ByStatus))
	}

	// Performance ranking sorted by efficiency, Carlos (96) first
	if len(r.TechnicianPerformance) != 7 {
		t.Fatalf("Expected 7 performance rows, got %d", len(r.TechnicianPerformance))
	}
	if r.TechnicianPerformance[0].Name != "Carlos" || r.TechnicianPerformance[0].Efficiency != 96 {
		t.Errorf("Expected Carlos (96) first, got %s (%d)",
			r.TechnicianPerformance[0].Name, r.TechnicianPerformance[0].Efficiency)
	}
	for i := 1; i < len(r.TechnicianPerformance); i++ {
		if r.TechnicianPerformance[i].Efficiency > r.TechnicianPerformance[i-1].Efficiency {
			t.Error("Expected ranking sorted by efficiency descending")
		}
	}

	// Simulated 75/25 deadline split of the 2 completed processes
	if r.Deadline.OnTime != 2 || r.Deadline.Delayed != 1 || r.Deadline.AvgDays != 18 {
		t.Errorf("Unexpected deadline analysis: %+v", r.Deadline)
	}

	if len(r.Monthly) != 6 || r.Monthly[0].Month != "Jan" {
		t.Errorf("Unexpected monthly series: %+v", r.Monthly)
	}

	if r.TechnicianStats.Total != 7 {
		t.Errorf("Expected technician stats embedded, got %+v", r.TechnicianStats)
	}
}

func TestAnalyticsReportEmpty(t *testing.T) {
	analytics := NewAnalytics(NewProcessStore(nil), NewTechnicianStore(nil))

	r := analytics.Report()
	if r.CompletionRate != 0 {
		t.Errorf("Expected 0 completion rate on empty registry, got %d", r.CompletionRate)
	}
	if len(r.ByType) != 0 || len(r.ByStatus) != 0 {
		t.Error("Expected no buckets on empty registry")
	}
	if r.TechnicianStats.AvgEfficiency != 0 {
		t.Errorf("Expected 0 avg efficiency, got %d", r.TechnicianStats.AvgEfficiency)
	}
}

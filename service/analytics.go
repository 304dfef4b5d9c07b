package service

import (
	"math"
	"sort"
	"strings"

	"github.com/jupiarasanches/gestao-processos3/model"
)

// Analytics computes the derived views the dashboard and report screens
// render. Nothing is cached; every call reads the registries fresh.
type Analytics struct {
	processes   *ProcessStore
	technicians *TechnicianStore
}

func NewAnalytics(processes *ProcessStore, technicians *TechnicianStore) *Analytics {
	return &Analytics{processes: processes, technicians: technicians}
}

// BucketCount is one slice of a type or status breakdown.
type BucketCount struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DashboardStats backs the landing dashboard cards.
type DashboardStats struct {
	TotalProcesses     int           `json:"totalProcesses"`
	ActiveProcesses    int           `json:"activeProcesses"`
	CompletedProcesses int           `json:"completedProcesses"`
	PendingProcesses   int           `json:"pendingProcesses"`
	ByType             []BucketCount `json:"byType"`
}

// TechnicianPerformance is one row of the report ranking, sorted by
// efficiency.
type TechnicianPerformance struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	Active     int    `json:"active"`
	Efficiency int    `json:"efficiency"`
	Goal       int    `json:"goal"`
}

// MonthlyPoint is one entry of the monthly evolution series. The series is
// the fixed demo table from the original dashboard, not derived from record
// dates.
type MonthlyPoint struct {
	Month     string `json:"month"`
	Processes int    `json:"processes"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// DeadlineAnalysis splits completed processes into on-time and delayed with
// the original's simulated 75/25 ratio.
type DeadlineAnalysis struct {
	OnTime  int `json:"onTime"`
	Delayed int `json:"delayed"`
	AvgDays int `json:"avgDays"`
}

// ReportAnalytics backs the reports screen and the spreadsheet export.
type ReportAnalytics struct {
	TotalProcesses        int                     `json:"totalProcesses"`
	CompletedProcesses    int                     `json:"completedProcesses"`
	ActiveProcesses       int                     `json:"activeProcesses"`
	PendingProcesses      int                     `json:"pendingProcesses"`
	CompletionRate        int                     `json:"completionRate"`
	ByType                []BucketCount           `json:"byType"`
	ByStatus              []BucketCount           `json:"byStatus"`
	TechnicianPerformance []TechnicianPerformance `json:"technicianPerformance"`
	Monthly               []MonthlyPoint          `json:"monthly"`
	Deadline              DeadlineAnalysis        `json:"deadline"`
	TechnicianStats       TechnicianStats         `json:"technicianStats"`
}

// dashboardTypes is the fixed card order of the landing dashboard.
var dashboardTypes = []string{
	model.TypeSIMCAR,
	model.TypePEF,
	model.TypePRA,
	model.TypeCCSEMA,
	model.TypeDAAP,
	model.TypeGeo,
	model.TypeDLA,
	model.TypeLaudos,
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Dashboard computes the landing-page stats. Active groups the in-flight
// statuses (Em Análise, Em Elaboração, Documentação); the report's narrower
// grouping lives in Report.
func (a *Analytics) Dashboard() DashboardStats {
	processes := a.processes.All()
	total := len(processes)

	stats := DashboardStats{TotalProcesses: total}
	counts := make(map[string]int)
	for _, p := range processes {
		counts[p.Type]++
		switch p.Status {
		case model.StatusEmAnalise, model.StatusEmElaboracao, model.StatusDocumentacao:
			stats.ActiveProcesses++
		case model.StatusAprovado, model.StatusConcluido:
			stats.CompletedProcesses++
		case model.StatusPendente, model.StatusAguardandoAnalise:
			stats.PendingProcesses++
		}
	}

	for _, t := range dashboardTypes {
		stats.ByType = append(stats.ByType, BucketCount{
			Name:       t,
			Count:      counts[t],
			Percentage: percentage(counts[t], total),
		})
	}
	return stats
}

// Report computes the full analytics view for the reports screen.
func (a *Analytics) Report() ReportAnalytics {
	processes := a.processes.All()
	total := len(processes)

	r := ReportAnalytics{TotalProcesses: total}
	for _, p := range processes {
		switch p.Status {
		case model.StatusAprovado, model.StatusConcluido:
			r.CompletedProcesses++
		case model.StatusEmAnalise, model.StatusEmElaboracao:
			r.ActiveProcesses++
		case model.StatusPendente, model.StatusAguardandoAnalise:
			r.PendingProcesses++
		}
	}
	r.CompletionRate = percentage(r.CompletedProcesses, total)

	r.ByType = bucketBy(processes, total, func(p *model.Process) string { return p.Type })
	r.ByStatus = bucketBy(processes, total, func(p *model.Process) string { return p.Status })

	for _, t := range a.technicians.All() {
		r.TechnicianPerformance = append(r.TechnicianPerformance, TechnicianPerformance{
			Name:       firstName(t.Name),
			Completed:  t.CompletedProcesses,
			Active:     t.ActiveProcesses,
			Efficiency: t.Efficiency,
			Goal:       t.MonthlyGoal,
		})
	}
	sort.SliceStable(r.TechnicianPerformance, func(i, j int) bool {
		return r.TechnicianPerformance[i].Efficiency > r.TechnicianPerformance[j].Efficiency
	})

	r.Monthly = []MonthlyPoint{
		{Month: "Jan", Processes: 12, Completed: 8, Pending: 4},
		{Month: "Fev", Processes: 15, Completed: 11, Pending: 4},
		{Month: "Mar", Processes: 18, Completed: 14, Pending: 4},
		{Month: "Abr", Processes: 22, Completed: 17, Pending: 5},
		{Month: "Mai", Processes: 25, Completed: 20, Pending: 5},
		{Month: "Jun", Processes: 28, Completed: 23, Pending: 5},
	}

	r.Deadline = DeadlineAnalysis{
		OnTime:  int(math.Round(float64(r.CompletedProcesses) * 0.75)),
		Delayed: int(math.Round(float64(r.CompletedProcesses) * 0.25)),
		AvgDays: 18,
	}

	r.TechnicianStats = a.technicians.Stats()
	return r
}

// bucketBy groups processes by a key, keeping first-seen order so the chart
// slices stay stable across reads.
func bucketBy(processes []*model.Process, total int, key func(*model.Process) string) []BucketCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range processes {
		k := key(p)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	result := make([]BucketCount, 0, len(order))
	for _, k := range order {
		result = append(result, BucketCount{
			Name:       k,
			Count:      counts[k],
			Percentage: percentage(counts[k], total),
		})
	}
	return result
}

func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

package service

import (
	"strings"

	"github.com/jupiarasanches/gestao-processos3/model"
)

// SearchResult groups the records matching a free-text query.
type SearchResult struct {
	Query       string              `json:"query"`
	Processes   []*model.Process    `json:"processes"`
	Technicians []*model.Technician `json:"technicians"`
	Total       int                 `json:"total"`
}

// Search runs a case-insensitive substring match over both registries, the
// same fields the dashboard's global search box covered.
func Search(processes *ProcessStore, technicians *TechnicianStore, query string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	result := SearchResult{
		Query:       query,
		Processes:   make([]*model.Process, 0),
		Technicians: make([]*model.Technician, 0),
	}
	if q == "" {
		return result
	}

	for _, p := range processes.All() {
		if containsFold(q, p.ID, p.Title, p.Client, p.Technician, p.Location, p.Type, p.Description) {
			result.Processes = append(result.Processes, p)
		}
	}
	for _, t := range technicians.All() {
		if containsFold(q, t.Name, t.Email, t.Specialty, t.RegistrationNumber, t.Location) {
			result.Technicians = append(result.Technicians, t)
		}
	}
	result.Total = len(result.Processes) + len(result.Technicians)
	return result
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

package service

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/jupiarasanches/gestao-processos3/model"
)

func validProcessInput(ptype string) ProcessInput {
	return ProcessInput{
		Type:     ptype,
		Title:    "Test Process",
		Client:   "Test Client",
		Status:   "Em Análise",
		Priority: "Média",
		Progress: 10,
	}
}

func TestProcessStoreAddGeneratesSequentialIDs(t *testing.T) {
	store := NewProcessStore(nil)
	year := strconv.Itoa(time.Now().Year())

	first, err := store.Add(validProcessInput("SIMCAR"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID != "SIMCAR-"+year+"-001" {
		t.Errorf("Expected SIMCAR-%s-001, got %s", year, first.ID)
	}

	second, err := store.Add(validProcessInput("SIMCAR"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.ID != "SIMCAR-"+year+"-002" {
		t.Errorf("Expected SIMCAR-%s-002, got %s", year, second.ID)
	}

	// A different type starts its own sequence
	other, err := store.Add(validProcessInput("PEF"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if other.ID != "PEF-"+year+"-001" {
		t.Errorf("Expected PEF-%s-001, got %s", year, other.ID)
	}
}

func TestProcessStoreAddContinuesSeedSequence(t *testing.T) {
	// Seed carries a record of the current year; the next id must follow it
	year := time.Now().Year()
	seed := []*model.Process{
		{
			ID:     fmt.Sprintf("SIMCAR-%d-004", year),
			Type:   "SIMCAR",
			Status: "Em Análise",
		},
	}
	store := NewProcessStore(seed)

	p, err := store.Add(validProcessInput("SIMCAR"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	expected := fmt.Sprintf("SIMCAR-%d-005", year)
	if p.ID != expected {
		t.Errorf("Expected %s, got %s", expected, p.ID)
	}
}

func TestProcessStoreIDUniqueness(t *testing.T) {
	store := NewProcessStore(nil)
	seen := make(map[string]bool)

	for i := 0; i < 25; i++ {
		ptype := "SIMCAR"
		if i%3 == 0 {
			ptype = "PEF"
		}
		p, err := store.Add(validProcessInput(ptype))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("Duplicate id generated: %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestProcessStoreAddSetsTimestampsAndOrder(t *testing.T) {
	store := NewProcessStore(nil)

	first, _ := store.Add(validProcessInput("SIMCAR"))
	if !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Error("Expected CreatedAt == UpdatedAt on a new process")
	}

	second, _ := store.Add(validProcessInput("SIMCAR"))

	// Most recent first
	all := store.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 processes, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("Expected most-recent-first order, got [%s %s]", all[0].ID, all[1].ID)
	}
}

func TestProcessStoreUpdate(t *testing.T) {
	store := NewProcessStore(nil)

	// Manual clock so the timestamp invariants are deterministic
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	p, _ := store.Add(validProcessInput("SIMCAR"))

	status := "Aprovado"
	progress := 100
	updated, err := store.Update(p.ID, ProcessPatch{Status: &status, Progress: &progress})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "Aprovado" {
		t.Errorf("Expected status Aprovado, got %s", updated.Status)
	}
	if updated.Progress != 100 {
		t.Errorf("Expected progress 100, got %d", updated.Progress)
	}

	// CreatedAt untouched, UpdatedAt strictly after
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Error("Expected CreatedAt to never change")
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) {
		t.Error("Expected UpdatedAt to increase on update")
	}

	// Untouched fields survive the patch
	if updated.Title != p.Title {
		t.Errorf("Expected title %q to survive, got %q", p.Title, updated.Title)
	}
}

func TestProcessStoreUpdateNotFound(t *testing.T) {
	store := NewProcessStore(SeedProcesses())
	before := store.Count()

	status := "Aprovado"
	_, err := store.Update("NONEXISTENT-ID", ProcessPatch{Status: &status})
	if !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("Expected ErrProcessNotFound, got %v", err)
	}
	if store.Count() != before {
		t.Error("Expected registry unchanged after not-found update")
	}
}

func TestProcessStoreUpdateValidation(t *testing.T) {
	store := NewProcessStore(nil)
	p, _ := store.Add(validProcessInput("SIMCAR"))

	tests := []struct {
		name  string
		patch ProcessPatch
	}{
		{"progress above 100", ProcessPatch{Progress: intPtr(150)}},
		{"negative progress", ProcessPatch{Progress: intPtr(-1)}},
		{"negative documents", ProcessPatch{Documents: intPtr(-2)}},
		{"unknown priority", ProcessPatch{Priority: strPtr("Urgente")}},
		{"empty title", ProcessPatch{Title: strPtr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Update(p.ID, tt.patch); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestProcessStoreAddValidation(t *testing.T) {
	store := NewProcessStore(nil)

	tests := []struct {
		name  string
		input ProcessInput
	}{
		{"missing type", ProcessInput{Title: "t", Client: "c", Status: "s", Priority: "Alta"}},
		{"missing title", ProcessInput{Type: "PEF", Client: "c", Status: "s", Priority: "Alta"}},
		{"missing client", ProcessInput{Type: "PEF", Title: "t", Status: "s", Priority: "Alta"}},
		{"bad priority", ProcessInput{Type: "PEF", Title: "t", Client: "c", Status: "s", Priority: "urgent"}},
		{"progress out of range", ProcessInput{Type: "PEF", Title: "t", Client: "c", Status: "s", Priority: "Alta", Progress: 101}},
		{"negative documents", ProcessInput{Type: "PEF", Title: "t", Client: "c", Status: "s", Priority: "Alta", Documents: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Add(tt.input); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
	if store.Count() != 0 {
		t.Errorf("Expected empty store after rejected inputs, got %d", store.Count())
	}
}

func TestProcessStoreDelete(t *testing.T) {
	store := NewProcessStore(nil)
	p, _ := store.Add(validProcessInput("DLA"))

	if err := store.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.ByID(p.ID) != nil {
		t.Error("Expected process to be gone after delete")
	}

	// Second delete reports not-found and leaves the registry unchanged
	if err := store.Delete(p.ID); !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("Expected ErrProcessNotFound, got %v", err)
	}
	if store.Count() != 0 {
		t.Errorf("Expected empty store, got %d", store.Count())
	}
}

func TestProcessStoreByType(t *testing.T) {
	store := NewProcessStore(SeedProcesses())

	simcar := store.ByType("SIMCAR")
	if len(simcar) != 1 {
		t.Fatalf("Expected 1 SIMCAR process in seed, got %d", len(simcar))
	}
	if simcar[0].ID != "SIMCAR-2024-001" {
		t.Errorf("Expected SIMCAR-2024-001, got %s", simcar[0].ID)
	}

	for _, p := range store.ByType("PEF") {
		if p.Type != "PEF" {
			t.Errorf("ByType returned a %s process", p.Type)
		}
	}

	if got := store.ByType("UNKNOWN"); len(got) != 0 {
		t.Errorf("Expected no processes for unknown type, got %d", len(got))
	}
}

func TestProcessStoreByID(t *testing.T) {
	store := NewProcessStore(SeedProcesses())

	p := store.ByID("PEF-2024-002")
	if p == nil {
		t.Fatal("Expected to find seeded process")
	}
	if p.Client != "Madeireira Sustentável S.A." {
		t.Errorf("Unexpected client: %s", p.Client)
	}

	if store.ByID("missing") != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestProcessStoreReadsReturnCopies(t *testing.T) {
	store := NewProcessStore(SeedProcesses())

	p := store.ByID("SIMCAR-2024-001")
	p.Status = "tampered"

	if store.ByID("SIMCAR-2024-001").Status == "tampered" {
		t.Error("Mutating a returned record must not change the registry")
	}
}

func TestProcessStoreAddDocument(t *testing.T) {
	store := NewProcessStore(nil)
	p, _ := store.Add(validProcessInput("Laudos"))

	updated, err := store.AddDocument(p.ID)
	if err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	if updated.Documents != 1 {
		t.Errorf("Expected 1 document, got %d", updated.Documents)
	}

	if _, err := store.AddDocument("missing"); !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("Expected ErrProcessNotFound, got %v", err)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

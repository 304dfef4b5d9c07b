package service

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/jupiarasanches/gestao-processos3/model"
)

// ErrTechnicianNotFound is returned by mutations that reference an unknown id.
var ErrTechnicianNotFound = errors.New("technician not found")

// TechnicianInput carries the caller-settable fields of a new technician.
// The track-record fields (ActiveProcesses, CompletedProcesses, Efficiency)
// are deliberately absent: new technicians always start at zero.
type TechnicianInput struct {
	Name               string
	Email              string
	Phone              string
	RegistrationNumber string
	Specialty          string
	Status             string
	Location           string
	JoinDate           string
	Avatar             string
	MonthlyGoal        int
	Experience         string
	Certifications     []string
	Skills             []string
	EmergencyContact   model.EmergencyContact
}

// TechnicianPatch is a partial update. Nil fields are left untouched.
type TechnicianPatch struct {
	Name               *string
	Email              *string
	Phone              *string
	RegistrationNumber *string
	Specialty          *string
	Status             *string
	Location           *string
	JoinDate           *string
	Avatar             *string
	ActiveProcesses    *int
	CompletedProcesses *int
	Efficiency         *int
	MonthlyGoal        *int
	Experience         *string
	Certifications     *[]string
	Skills             *[]string
	EmergencyContact   *model.EmergencyContact
}

// TechnicianStats is the aggregate view over the registry, computed fresh on
// every call.
type TechnicianStats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	OnField       int `json:"onField"`
	OnVacation    int `json:"onVacation"`
	Inactive      int `json:"inactive"`
	AvgEfficiency int `json:"avgEfficiency"`
}

// TechnicianStore is the in-memory registry of technicians.
type TechnicianStore struct {
	mu          sync.RWMutex
	technicians []*model.Technician
}

// NewTechnicianStore creates a store pre-populated with the given records.
func NewTechnicianStore(seed []*model.Technician) *TechnicianStore {
	s := &TechnicianStore{}
	for _, t := range seed {
		s.technicians = append(s.technicians, cloneTechnician(t))
	}
	return s
}

// Add validates the input and inserts a new technician with a generated id.
// ActiveProcesses, CompletedProcesses and Efficiency start at zero no matter
// what the caller sent over the wire.
func (s *TechnicianStore) Add(input TechnicianInput) (*model.Technician, error) {
	if err := validateTechnicianInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &model.Technician{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		RegistrationNumber: input.RegistrationNumber,
		Specialty:          input.Specialty,
		Status:             input.Status,
		Location:           input.Location,
		JoinDate:           input.JoinDate,
		Avatar:             input.Avatar,
		ActiveProcesses:    0,
		CompletedProcesses: 0,
		Efficiency:         0,
		MonthlyGoal:        input.MonthlyGoal,
		Experience:         input.Experience,
		Certifications:     append([]string(nil), input.Certifications...),
		Skills:             append([]string(nil), input.Skills...),
		EmergencyContact:   input.EmergencyContact,
	}
	s.technicians = append(s.technicians, t)

	return cloneTechnician(t), nil
}

// Update shallow-merges the set fields into the record. Returns
// ErrTechnicianNotFound when the id is unknown.
func (s *TechnicianStore) Update(id string, patch TechnicianPatch) (*model.Technician, error) {
	if err := validateTechnicianPatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return nil, ErrTechnicianNotFound
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Email != nil {
		t.Email = *patch.Email
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
	}
	if patch.RegistrationNumber != nil {
		t.RegistrationNumber = *patch.RegistrationNumber
	}
	if patch.Specialty != nil {
		t.Specialty = *patch.Specialty
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Location != nil {
		t.Location = *patch.Location
	}
	if patch.JoinDate != nil {
		t.JoinDate = *patch.JoinDate
	}
	if patch.Avatar != nil {
		t.Avatar = *patch.Avatar
	}
	if patch.ActiveProcesses != nil {
		t.ActiveProcesses = *patch.ActiveProcesses
	}
	if patch.CompletedProcesses != nil {
		t.CompletedProcesses = *patch.CompletedProcesses
	}
	if patch.Efficiency != nil {
		t.Efficiency = *patch.Efficiency
	}
	if patch.MonthlyGoal != nil {
		t.MonthlyGoal = *patch.MonthlyGoal
	}
	if patch.Experience != nil {
		t.Experience = *patch.Experience
	}
	if patch.Certifications != nil {
		t.Certifications = append([]string(nil), (*patch.Certifications)...)
	}
	if patch.Skills != nil {
		t.Skills = append([]string(nil), (*patch.Skills)...)
	}
	if patch.EmergencyContact != nil {
		t.EmergencyContact = *patch.EmergencyContact
	}

	return cloneTechnician(t), nil
}

// Delete removes the record. Returns ErrTechnicianNotFound when the id is
// unknown, leaving the registry as it was.
func (s *TechnicianStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.technicians {
		if t.ID == id {
			s.technicians = append(s.technicians[:i], s.technicians[i+1:]...)
			return nil
		}
	}
	return ErrTechnicianNotFound
}

// ByID returns a copy of the record, or nil when the id is unknown.
func (s *TechnicianStore) ByID(id string) *model.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t := s.find(id); t != nil {
		return cloneTechnician(t)
	}
	return nil
}

// BySpecialty returns all technicians with the given specialty, in registry
// order.
func (s *TechnicianStore) BySpecialty(specialty string) []*model.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Technician, 0)
	for _, t := range s.technicians {
		if t.Specialty == specialty {
			result = append(result, cloneTechnician(t))
		}
	}
	return result
}

// Available returns the technicians currently able to take new processes.
func (s *TechnicianStore) Available() []*model.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Technician, 0)
	for _, t := range s.technicians {
		if t.Status == model.TechStatusActive {
			result = append(result, cloneTechnician(t))
		}
	}
	return result
}

// All returns every record in registry order.
func (s *TechnicianStore) All() []*model.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Technician, 0, len(s.technicians))
	for _, t := range s.technicians {
		result = append(result, cloneTechnician(t))
	}
	return result
}

// Count returns the number of technicians in the store
func (s *TechnicianStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.technicians)
}

// Stats computes the per-status counts and the rounded mean efficiency.
// An empty registry yields all zeros, not NaN.
func (s *TechnicianStore) Stats() TechnicianStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := TechnicianStats{Total: len(s.technicians)}
	sum := 0
	for _, t := range s.technicians {
		switch t.Status {
		case model.TechStatusActive:
			stats.Active++
		case model.TechStatusOnField:
			stats.OnField++
		case model.TechStatusVacation:
			stats.OnVacation++
		case model.TechStatusInactive:
			stats.Inactive++
		}
		sum += t.Efficiency
	}
	if stats.Total > 0 {
		stats.AvgEfficiency = int(math.Round(float64(sum) / float64(stats.Total)))
	}
	return stats
}

// find must be called with a lock held.
func (s *TechnicianStore) find(id string) *model.Technician {
	for _, t := range s.technicians {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func cloneTechnician(t *model.Technician) *model.Technician {
	cp := *t
	cp.Certifications = append([]string(nil), t.Certifications...)
	cp.Skills = append([]string(nil), t.Skills...)
	return &cp
}

func validateTechnicianStatus(status string) error {
	switch status {
	case model.TechStatusActive, model.TechStatusInactive,
		model.TechStatusVacation, model.TechStatusOnField:
		return nil
	}
	return fmt.Errorf("invalid status %q", status)
}

func validateTechnicianInput(input TechnicianInput) error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if input.Email == "" {
		return errors.New("email is required")
	}
	if err := validateTechnicianStatus(input.Status); err != nil {
		return err
	}
	if input.MonthlyGoal < 0 {
		return errors.New("monthlyGoal must not be negative")
	}
	return nil
}

func validateTechnicianPatch(patch TechnicianPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return errors.New("name must not be empty")
	}
	if patch.Email != nil && *patch.Email == "" {
		return errors.New("email must not be empty")
	}
	if patch.Status != nil {
		if err := validateTechnicianStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.ActiveProcesses != nil && *patch.ActiveProcesses < 0 {
		return errors.New("activeProcesses must not be negative")
	}
	if patch.CompletedProcesses != nil && *patch.CompletedProcesses < 0 {
		return errors.New("completedProcesses must not be negative")
	}
	if patch.Efficiency != nil && (*patch.Efficiency < 0 || *patch.Efficiency > 100) {
		return errors.New("efficiency must be between 0 and 100")
	}
	if patch.MonthlyGoal != nil && *patch.MonthlyGoal < 0 {
		return errors.New("monthlyGoal must not be negative")
	}
	return nil
}

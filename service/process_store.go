package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jupiarasanches/gestao-processos3/model"
)

// ErrProcessNotFound is returned by mutations that reference an unknown id.
var ErrProcessNotFound = errors.New("process not found")

var processSeq = regexp.MustCompile(`-(\d+)$`)

// ProcessInput carries the caller-settable fields of a new process. ID and
// timestamps are always generated by the store.
type ProcessInput struct {
	Type        string
	Title       string
	Client      string
	Technician  string
	Status      string
	Priority    string
	Area        string
	Location    string
	StartDate   string
	Deadline    string
	Documents   int
	Progress    int
	Description string
}

// ProcessPatch is a partial update. Nil fields are left untouched.
type ProcessPatch struct {
	Type        *string
	Title       *string
	Client      *string
	Technician  *string
	Status      *string
	Priority    *string
	Area        *string
	Location    *string
	StartDate   *string
	Deadline    *string
	Documents   *int
	Progress    *int
	Description *string
}

// ProcessStore is the in-memory registry of licensing processes. Records are
// kept most-recent-first; readers get copies, so a held record never changes
// under a concurrent patch.
type ProcessStore struct {
	mu        sync.RWMutex
	processes []*model.Process
	now       func() time.Time
}

// NewProcessStore creates a store pre-populated with the given records.
// Seed records are inserted as-is, IDs and timestamps included.
func NewProcessStore(seed []*model.Process) *ProcessStore {
	s := &ProcessStore{now: time.Now}
	for _, p := range seed {
		cp := *p
		s.processes = append(s.processes, &cp)
	}
	return s
}

// Add validates the input, generates the next sequential ID for the process
// type in the current year and inserts the record at the head of the
// registry.
func (s *ProcessStore) Add(input ProcessInput) (*model.Process, error) {
	if err := validateProcessInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := &model.Process{
		ID:          s.nextID(input.Type, now),
		Type:        input.Type,
		Title:       input.Title,
		Client:      input.Client,
		Technician:  input.Technician,
		Status:      input.Status,
		Priority:    input.Priority,
		Area:        input.Area,
		Location:    input.Location,
		StartDate:   input.StartDate,
		Deadline:    input.Deadline,
		Documents:   input.Documents,
		Progress:    input.Progress,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.processes = append([]*model.Process{p}, s.processes...)

	cp := *p
	return &cp, nil
}

// nextID computes "{TYPE}-{YEAR}-{SEQ}" where SEQ is the highest existing
// sequence among records of the same type whose id mentions the current
// year, plus one, zero-padded to 3 digits. Must be called with the write
// lock held so the max-plus-one scan stays race-free.
func (s *ProcessStore) nextID(ptype string, now time.Time) string {
	year := strconv.Itoa(now.Year())
	max := 0
	for _, p := range s.processes {
		if p.Type != ptype || !strings.Contains(p.ID, year) {
			continue
		}
		m := processSeq.FindStringSubmatch(p.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%s-%03d", ptype, year, max+1)
}

// Update shallow-merges the set fields into the record and refreshes
// UpdatedAt. CreatedAt never changes. Returns ErrProcessNotFound when the id
// is unknown; the registry is untouched in that case.
func (s *ProcessStore) Update(id string, patch ProcessPatch) (*model.Process, error) {
	if err := validateProcessPatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, ErrProcessNotFound
	}

	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
	if patch.Technician != nil {
		p.Technician = *patch.Technician
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.Deadline != nil {
		p.Deadline = *patch.Deadline
	}
	if patch.Documents != nil {
		p.Documents = *patch.Documents
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = s.now()

	cp := *p
	return &cp, nil
}

// AddDocument bumps the document counter of a process and refreshes
// UpdatedAt. Used by the simulated upload.
func (s *ProcessStore) AddDocument(id string) (*model.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, ErrProcessNotFound
	}
	p.Documents++
	p.UpdatedAt = s.now()

	cp := *p
	return &cp, nil
}

// Delete removes the record. Returns ErrProcessNotFound when the id is
// unknown, leaving the registry as it was.
func (s *ProcessStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.processes {
		if p.ID == id {
			s.processes = append(s.processes[:i], s.processes[i+1:]...)
			return nil
		}
	}
	return ErrProcessNotFound
}

// ByID returns a copy of the record, or nil when the id is unknown.
func (s *ProcessStore) ByID(id string) *model.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p := s.find(id); p != nil {
		cp := *p
		return &cp
	}
	return nil
}

// ByType returns all records of the given type, in registry order.
func (s *ProcessStore) ByType(ptype string) []*model.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Process, 0)
	for _, p := range s.processes {
		if p.Type == ptype {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result
}

// All returns every record in registry order (most recent first).
func (s *ProcessStore) All() []*model.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Process, 0, len(s.processes))
	for _, p := range s.processes {
		cp := *p
		result = append(result, &cp)
	}
	return result
}

// Count returns the number of processes in the store
func (s *ProcessStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.processes)
}

// find must be called with a lock held.
func (s *ProcessStore) find(id string) *model.Process {
	for _, p := range s.processes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func validatePriority(priority string) error {
	switch priority {
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		return nil
	}
	return fmt.Errorf("invalid priority %q", priority)
}

func validateProcessInput(input ProcessInput) error {
	if input.Type == "" {
		return errors.New("type is required")
	}
	if input.Title == "" {
		return errors.New("title is required")
	}
	if input.Client == "" {
		return errors.New("client is required")
	}
	if input.Status == "" {
		return errors.New("status is required")
	}
	if err := validatePriority(input.Priority); err != nil {
		return err
	}
	if input.Progress < 0 || input.Progress > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	if input.Documents < 0 {
		return errors.New("documents must not be negative")
	}
	return nil
}

func validateProcessPatch(patch ProcessPatch) error {
	if patch.Type != nil && *patch.Type == "" {
		return errors.New("type must not be empty")
	}
	if patch.Title != nil && *patch.Title == "" {
		return errors.New("title must not be empty")
	}
	if patch.Client != nil && *patch.Client == "" {
		return errors.New("client must not be empty")
	}
	if patch.Status != nil && *patch.Status == "" {
		return errors.New("status must not be empty")
	}
	if patch.Priority != nil {
		if err := validatePriority(*patch.Priority); err != nil {
			return err
		}
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return errors.New("progress must be between 0 and 100")
	}
	if patch.Documents != nil && *patch.Documents < 0 {
		return errors.New("documents must not be negative")
	}
	return nil
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jupiarasanches/gestao-processos3/model"
	"github.com/jupiarasanches/gestao-processos3/pkg/logger"
	"github.com/jupiarasanches/gestao-processos3/service"
)

type TechnicianHandler struct {
	store *service.TechnicianStore
}

func NewTechnicianHandler(store *service.TechnicianStore) *TechnicianHandler {
	return &TechnicianHandler{store: store}
}

type createTechnicianRequest struct {
	Name               string                 `json:"name" binding:"required"`
	Email              string                 `json:"email" binding:"required,email"`
	Phone              string                 `json:"phone"`
	RegistrationNumber string                 `json:"registrationNumber"`
	Specialty          string                 `json:"specialty"`
	Status             string                 `json:"status"`
	Location           string                 `json:"location"`
	JoinDate           string                 `json:"joinDate"`
	Avatar             string                 `json:"avatar"`
	MonthlyGoal        int                    `json:"monthlyGoal"`
	Experience         string                 `json:"experience"`
	Certifications     []string               `json:"certifications"`
	Skills             []string               `json:"skills"`
	EmergencyContact   model.EmergencyContact `json:"emergencyContact"`
}

// Create registers a new technician. Track-record fields always start at
// zero, whatever the caller sent.
func (h *TechnicianHandler) Create(c *gin.Context) {
	var req createTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Status == "" {
		req.Status = model.TechStatusActive
	}

	t, err := h.store.Add(service.TechnicianInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		RegistrationNumber: req.RegistrationNumber,
		Specialty:          req.Specialty,
		Status:             req.Status,
		Location:           req.Location,
		JoinDate:           req.JoinDate,
		Avatar:             req.Avatar,
		MonthlyGoal:        req.MonthlyGoal,
		Experience:         req.Experience,
		Certifications:     req.Certifications,
		Skills:             req.Skills,
		EmergencyContact:   req.EmergencyContact,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info(c.Request.Context(), "technician created", "technician_id", t.ID, "name", t.Name)
	c.JSON(http.StatusCreated, t)
}

// List returns technicians, optionally filtered by specialty or availability
func (h *TechnicianHandler) List(c *gin.Context) {
	var technicians []*model.Technician
	switch {
	case c.Query("available") == "true":
		technicians = h.store.Available()
	case c.Query("specialty") != "":
		technicians = h.store.BySpecialty(c.Query("specialty"))
	default:
		technicians = h.store.All()
	}

	c.JSON(http.StatusOK, gin.H{
		"technicians": technicians,
		"total":       len(technicians),
	})
}

// Get returns a single technician
func (h *TechnicianHandler) Get(c *gin.Context) {
	t := h.store.ByID(c.Param("id"))
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

type updateTechnicianRequest struct {
	Name               *string                 `json:"name,omitempty"`
	Email              *string                 `json:"email,omitempty"`
	Phone              *string                 `json:"phone,omitempty"`
	RegistrationNumber *string                 `json:"registrationNumber,omitempty"`
	Specialty          *string                 `json:"specialty,omitempty"`
	Status             *string                 `json:"status,omitempty"`
	Location           *string                 `json:"location,omitempty"`
	JoinDate           *string                 `json:"joinDate,omitempty"`
	Avatar             *string                 `json:"avatar,omitempty"`
	ActiveProcesses    *int                    `json:"activeProcesses,omitempty"`
	CompletedProcesses *int                    `json:"completedProcesses,omitempty"`
	Efficiency         *int                    `json:"efficiency,omitempty"`
	MonthlyGoal        *int                    `json:"monthlyGoal,omitempty"`
	Experience         *string                 `json:"experience,omitempty"`
	Certifications     *[]string               `json:"certifications,omitempty"`
	Skills             *[]string               `json:"skills,omitempty"`
	EmergencyContact   *model.EmergencyContact `json:"emergencyContact,omitempty"`
}

func (r *updateTechnicianRequest) empty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil &&
		r.RegistrationNumber == nil && r.Specialty == nil && r.Status == nil &&
		r.Location == nil && r.JoinDate == nil && r.Avatar == nil &&
		r.ActiveProcesses == nil && r.CompletedProcesses == nil &&
		r.Efficiency == nil && r.MonthlyGoal == nil && r.Experience == nil &&
		r.Certifications == nil && r.Skills == nil && r.EmergencyContact == nil
}

// Update applies a partial patch to a technician
func (h *TechnicianHandler) Update(c *gin.Context) {
	var req updateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}

	t, err := h.store.Update(c.Param("id"), service.TechnicianPatch{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		RegistrationNumber: req.RegistrationNumber,
		Specialty:          req.Specialty,
		Status:             req.Status,
		Location:           req.Location,
		JoinDate:           req.JoinDate,
		Avatar:             req.Avatar,
		ActiveProcesses:    req.ActiveProcesses,
		CompletedProcesses: req.CompletedProcesses,
		Efficiency:         req.Efficiency,
		MonthlyGoal:        req.MonthlyGoal,
		Experience:         req.Experience,
		Certifications:     req.Certifications,
		Skills:             req.Skills,
		EmergencyContact:   req.EmergencyContact,
	})
	if err != nil {
		if errors.Is(err, service.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, t)
}

// Delete removes a technician
func (h *TechnicianHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technician deleted"})
}

// Stats returns the aggregate view over the roster
func (h *TechnicianHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

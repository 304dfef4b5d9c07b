package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jupiarasanches/gestao-processos3/config"
	"github.com/jupiarasanches/gestao-processos3/model"
	"github.com/jupiarasanches/gestao-processos3/pkg/logger"
	"github.com/jupiarasanches/gestao-processos3/service"
)

type ProcessHandler struct {
	store          *service.ProcessStore
	maxUploadBytes int64
}

func NewProcessHandler(store *service.ProcessStore, uploadCfg *config.UploadConfig) *ProcessHandler {
	return &ProcessHandler{
		store:          store,
		maxUploadBytes: int64(uploadCfg.MaxFileSizeMB) * 1024 * 1024,
	}
}

type createProcessRequest struct {
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Client      string `json:"client" binding:"required"`
	Technician  string `json:"technician"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Area        string `json:"area"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	Deadline    string `json:"deadline"`
	Documents   int    `json:"documents"`
	Progress    int    `json:"progress"`
	Description string `json:"description"`
}

// Create registers a new process; id and timestamps are generated
func (h *ProcessHandler) Create(c *gin.Context) {
	var req createProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Form defaults, same as the new-process dialog
	if req.Status == "" {
		req.Status = model.StatusEmAnalise
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	p, err := h.store.Add(service.ProcessInput{
		Type:        req.Type,
		Title:       req.Title,
		Client:      req.Client,
		Technician:  req.Technician,
		Status:      req.Status,
		Priority:    req.Priority,
		Area:        req.Area,
		Location:    req.Location,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		Documents:   req.Documents,
		Progress:    req.Progress,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info(c.Request.Context(), "process created", "process_id", p.ID, "type", p.Type)
	c.JSON(http.StatusCreated, p)
}

// List returns processes, optionally filtered by type and status
func (h *ProcessHandler) List(c *gin.Context) {
	var processes []*model.Process
	if t := c.Query("type"); t != "" {
		processes = h.store.ByType(t)
	} else {
		processes = h.store.All()
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]*model.Process, 0, len(processes))
		for _, p := range processes {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		processes = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"processes": processes,
		"total":     len(processes),
	})
}

// Get returns a single process
func (h *ProcessHandler) Get(c *gin.Context) {
	p := h.store.ByID(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateProcessRequest struct {
	Type        *string `json:"type,omitempty"`
	Title       *string `json:"title,omitempty"`
	Client      *string `json:"client,omitempty"`
	Technician  *string `json:"technician,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Area        *string `json:"area,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Documents   *int    `json:"documents,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *updateProcessRequest) empty() bool {
	return r.Type == nil && r.Title == nil && r.Client == nil &&
		r.Technician == nil && r.Status == nil && r.Priority == nil &&
		r.Area == nil && r.Location == nil && r.StartDate == nil &&
		r.Deadline == nil && r.Documents == nil && r.Progress == nil &&
		r.Description == nil
}

// Update applies a partial patch to a process
func (h *ProcessHandler) Update(c *gin.Context) {
	var req updateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}

	p, err := h.store.Update(c.Param("id"), service.ProcessPatch{
		Type:        req.Type,
		Title:       req.Title,
		Client:      req.Client,
		Technician:  req.Technician,
		Status:      req.Status,
		Priority:    req.Priority,
		Area:        req.Area,
		Location:    req.Location,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		Documents:   req.Documents,
		Progress:    req.Progress,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProcessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete removes a process
func (h *ProcessHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Process deleted"})
}

// UploadDocument simulates a document upload: the file is validated and
// drained, its content discarded, and the process document counter bumped.
func (h *ProcessHandler) UploadDocument(c *gin.Context) {
	id := c.Param("id")
	if h.store.ByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	// PDF and JPEG allowed, same rules as the upload screen
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".jpg" && ext != ".jpeg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and JPEG files are allowed"})
		return
	}
	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the size limit"})
		return
	}

	// Drain the body; there is no real storage behind this endpoint
	if _, err := io.Copy(io.Discard, file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	p, err := h.store.AddDocument(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
		return
	}

	doc := model.Document{
		ID:         uuid.NewString(),
		ProcessID:  id,
		Name:       header.Filename,
		Size:       header.Size,
		UploadedAt: time.Now(),
	}
	logger.Info(c.Request.Context(), "document uploaded",
		"process_id", id, "file", header.Filename, "size", header.Size)

	c.JSON(http.StatusCreated, gin.H{
		"document":  doc,
		"documents": p.Documents,
	})
}

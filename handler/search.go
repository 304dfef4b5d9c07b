package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jupiarasanches/gestao-processos3/service"
)

type SearchHandler struct {
	processes   *service.ProcessStore
	technicians *service.TechnicianStore
}

func NewSearchHandler(processes *service.ProcessStore, technicians *service.TechnicianStore) *SearchHandler {
	return &SearchHandler{processes: processes, technicians: technicians}
}

// Search runs a free-text query over both registries
func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	c.JSON(http.StatusOK, service.Search(h.processes, h.technicians, q))
}

package handlers

import (
	"net/http"

	"carewell/models"
	"carewell/services/job"

	"github.com/gin-gonic/gin"
)

// JobHandler exposes the job placement listings.
type JobHandler struct {
	Service job.JobService
}

// NewJobHandler creates a new JobHandler instance.
func NewJobHandler(svc job.JobService) *JobHandler {
	return &JobHandler{Service: svc}
}

// ListJobsHandler handles GET /api/jobs.
func (h *JobHandler) ListJobsHandler(c *gin.Context) {
	filter := models.JobFilter{
		Category:   c.Query("category"),
		Country:    c.Query("country"),
		ActiveOnly: true,
	}
	jobs, err := h.Service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobHandler handles GET /api/jobs/:id.
func (h *JobHandler) GetJobHandler(c *gin.Context) {
	j, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, j)
}

// CreateJobHandler handles POST /api/admin/jobs.
func (h *JobHandler) CreateJobHandler(c *gin.Context) {
	var j models.Job
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(j)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateJobHandler handles PUT /api/admin/jobs/:id.
func (h *JobHandler) UpdateJobHandler(c *gin.Context) {
	var j models.Job
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j.ID = c.Param("id")
	updated, err := h.Service.Update(j)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJobHandler handles DELETE /api/admin/jobs/:id.
func (h *JobHandler) DeleteJobHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/hirehub/internal/auth"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// CreateJob is POST /jobs, employer only. Ownership comes from the session.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job payload: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(auth.AccountID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is GET /jobs, the public board, newest first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/auth"
	"github.com/dkarpov/hirehub/internal/services"
	"github.com/dkarpov/hirehub/internal/uploads"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Uploads      *uploads.Store
}

func NewApplicationHandler(applications *services.ApplicationService, store *uploads.Store) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Uploads: store}
}

// Apply is POST /jobs/:id/apply, seeker only, multipart with one PDF field
// named "resume". The resume is stored first; if filing the application then
// fails the stored file is removed again, so a rejected submission leaves
// nothing behind.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		respondError(c, fmt.Errorf("%w: a resume file is required", apperr.ErrValidation))
		return
	}

	resumePath, err := h.Uploads.Save(fh, uploads.PurposeResume)
	if err != nil {
		respondError(c, err)
		return
	}

	application, err := h.Applications.Apply(auth.AccountID(c), uint(jobID), resumePath)
	if err != nil {
		_ = h.Uploads.Remove(resumePath)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// MyApplications is GET /applications, seeker only.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	list, err := h.Applications.ListForSeeker(auth.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// EmployerApplicants is GET /employer/applicants, employer only. Returns
// the per-job applicant roster described by the aggregation service.
func (h *ApplicationHandler) EmployerApplicants(c *gin.Context) {
	roster, err := h.Applications.EmployerRoster(auth.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

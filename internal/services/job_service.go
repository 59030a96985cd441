package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/models"
)

type JobService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewJobService(db *gorm.DB, logger *zap.Logger) *JobService {
	return &JobService{DB: db, Logger: logger}
}

// Create persists a posting owned by the calling employer. The caller's id
// comes from the session, never from the request body, so an employer can
// only ever post under their own account.
func (s *JobService) Create(employerID uint, req *dtos.JobCreationRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		EmployerID:  employerID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("creating job posting: %w", err)
	}

	s.Logger.Info("job posted",
		zap.Uint("job_id", job.ID),
		zap.Uint("employer_id", employerID),
	)
	return job, nil
}

// List returns all postings, newest first.
func (s *JobService) List() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("listing job postings: %w", err)
	}
	return jobs, nil
}

func (s *JobService) GetByID(id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.DB.First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("looking up job: %w", err)
	}
	return &job, nil
}

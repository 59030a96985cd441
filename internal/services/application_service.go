package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/models"
)

type ApplicationService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewApplicationService(db *gorm.DB, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{DB: db, Logger: logger}
}

// Apply files an application for the seeker. The resume must already be
// stored; duplicate (applicant, job) pairs are rejected by the composite
// unique index at write time, not by a lookup beforehand.
func (s *ApplicationService) Apply(applicantID, jobID uint, resumePath string) (*models.Application, error) {
	var job models.JobPosting
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", apperr.ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("looking up job: %w", err)
	}

	application := &models.Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		ResumePath:  resumePath,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: you have already applied to this job", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("creating application: %w", err)
	}

	s.Logger.Info("application filed",
		zap.Uint("application_id", application.ID),
		zap.Uint("job_id", jobID),
		zap.Uint("applicant_id", applicantID),
	)
	return application, nil
}

// ListForSeeker returns the caller's applications resolved against their
// postings, newest first. The inner join drops rows whose posting no longer
// resolves instead of erroring on them.
func (s *ApplicationService) ListForSeeker(applicantID uint) ([]dtos.SeekerApplication, error) {
	var rows []dtos.SeekerApplication
	err := s.DB.Table("applications").
		Select(`applications.id AS application_id, applications.status,
			applications.resume_path, applications.created_at AS applied_at,
			job_postings.id AS job_id, job_postings.title AS job_title,
			job_postings.company_name, job_postings.location`).
		Joins("JOIN job_postings ON job_postings.id = applications.job_id").
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	if rows == nil {
		rows = []dtos.SeekerApplication{}
	}
	return rows, nil
}

// rosterRow is the flat projection of the employer roster query. Applicant
// columns are pointers because the left join emits a placeholder row, with
// all of them NULL, for a posting that has no applications yet.
type rosterRow struct {
	JobID    uint
	JobTitle string
	PostedAt time.Time

	ApplicationID  *uint
	AppliedAt      *time.Time
	ResumePath     *string
	Status         *string
	ApplicantName  *string
	ApplicantEmail *string
}

// EmployerRoster produces the applicant roster for all of the employer's
// postings in one pass: postings left-joined to applications left-joined to
// applicant accounts, ordered newest posting first and newest application
// first within a posting. One query retrieves the whole picture instead of
// a lookup per posting; the price is filtering the placeholder rows while
// grouping, which is also how a posting with zero applicants stays visible.
func (s *ApplicationService) EmployerRoster(employerID uint) ([]dtos.JobApplicants, error) {
	var rows []rosterRow
	err := s.DB.Table("job_postings").
		Select(`job_postings.id AS job_id, job_postings.title AS job_title,
			job_postings.created_at AS posted_at,
			applications.id AS application_id, applications.created_at AS applied_at,
			applications.resume_path, applications.status,
			accounts.name AS applicant_name, accounts.email AS applicant_email`).
		Joins("LEFT JOIN applications ON applications.job_id = job_postings.id").
		Joins("LEFT JOIN accounts ON accounts.id = applications.applicant_id").
		Where("job_postings.employer_id = ?", employerID).
		Order("job_postings.created_at DESC, applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("building applicant roster: %w", err)
	}

	roster := []dtos.JobApplicants{}
	index := map[uint]int{}
	for _, row := range rows {
		pos, seen := index[row.JobID]
		if !seen {
			roster = append(roster, dtos.JobApplicants{
				JobID:      row.JobID,
				JobTitle:   row.JobTitle,
				PostedAt:   row.PostedAt,
				Applicants: []dtos.ApplicantEntry{},
			})
			pos = len(roster) - 1
			index[row.JobID] = pos
		}

		// Placeholder row from the left join: the posting exists, no
		// application matched it.
		if row.ApplicationID == nil {
			continue
		}

		entry := dtos.ApplicantEntry{
			ApplicationID: *row.ApplicationID,
			ResumePath:    deref(row.ResumePath),
			Status:        deref(row.Status),
			Name:          deref(row.ApplicantName),
			Email:         deref(row.ApplicantEmail),
		}
		if row.AppliedAt != nil {
			entry.AppliedAt = *row.AppliedAt
		}
		roster[pos].Applicants = append(roster[pos].Applicants, entry)
	}
	return roster, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package models

import (
	"time"
)

// Role is the fixed capability class of an Account. It is assigned at
// registration and never changes afterwards.
type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleEmployer
}

// ApplicationStatusPending is the status every new application starts in.
// Status transitions are an employer concern and have no mutation endpoint yet.
const ApplicationStatusPending = "Pending"

// Account is a registered user, either a job seeker or an employer. The
// seeker-only and employer-only field groups coexist on the record; only the
// group matching the role is meaningful, the other one is simply unused.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`

	// Common optional profile fields.
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `gorm:"type:text" json:"bio,omitempty"`

	// Seeker-only fields.
	Skills     string `gorm:"type:text" json:"skills,omitempty"`
	Experience string `gorm:"type:text" json:"experience,omitempty"`

	// Employer-only fields.
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `gorm:"type:text" json:"company_description,omitempty"`
	Website            string `json:"website,omitempty"`
}

// JobPosting is one open position published by an employer. Postings are
// immutable after creation; there is no edit or delete flow.
type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EmployerID uint    `gorm:"not null;index" json:"employer_id"`
	Employer   Account `gorm:"foreignKey:EmployerID" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location,omitempty"`

	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

// Application is one seeker's submission against one posting. The composite
// unique index is the storage-level guarantee that a seeker applies to a
// given job at most once; concurrent duplicates lose at write time instead
// of racing a pre-check.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ApplicantID uint    `gorm:"not null;uniqueIndex:idx_applications_applicant_job" json:"applicant_id"`
	Applicant   Account `gorm:"foreignKey:ApplicantID" json:"-"`

	JobID uint       `gorm:"not null;uniqueIndex:idx_applications_applicant_job" json:"job_id"`
	Job   JobPosting `gorm:"foreignKey:JobID" json:"-"`

	ResumePath string `gorm:"not null" json:"resume_path"`
	Status     string `gorm:"default:'Pending'" json:"status"`
}

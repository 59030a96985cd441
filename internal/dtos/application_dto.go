package dtos

import "time"

// SeekerApplication is one row of a seeker's own application list, already
// resolved against its posting.
type SeekerApplication struct {
	ApplicationID uint      `json:"application_id"`
	Status        string    `json:"status"`
	ResumePath    string    `json:"resume_path"`
	AppliedAt     time.Time `json:"applied_at"`

	JobID       uint   `json:"job_id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location,omitempty"`
}

// ApplicantEntry is one applicant within an employer's roster group.
type ApplicantEntry struct {
	ApplicationID uint      `json:"application_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ResumePath    string    `json:"resume_path"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// JobApplicants groups the roster by posting. A posting with no applications
// is present with an empty Applicants list, so the client can tell "this job
// has no applicants yet" apart from "this employer has no jobs".
type JobApplicants struct {
	JobID      uint             `json:"job_id"`
	JobTitle   string           `json:"job_title"`
	PostedAt   time.Time        `json:"posted_at"`
	Applicants []ApplicantEntry `json:"applicants"`
}

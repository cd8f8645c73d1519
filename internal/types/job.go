// Package types provides the wire shapes exchanged with the jobdeck backend API.
package types

import "github.com/go-playground/validator/v10"

// JobStatus is the application-tracking state of a saved job.
type JobStatus string

// Job statuses as defined by the backend.
const (
	JobStatusNew       JobStatus = "new"
	JobStatusApplied   JobStatus = "applied"
	JobStatusInterview JobStatus = "interview"
	JobStatusRejected  JobStatus = "rejected"
	JobStatusOffer     JobStatus = "offer"
)

// JobStatuses lists every valid job status in display order.
func JobStatuses() []JobStatus {
	return []JobStatus{JobStatusNew, JobStatusApplied, JobStatusInterview, JobStatusRejected, JobStatusOffer}
}

// Valid reports whether s is a status the backend accepts.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusNew, JobStatusApplied, JobStatusInterview, JobStatusRejected, JobStatusOffer:
		return true
	}
	return false
}

// Job is a saved job listing. The backend is the authority for all fields;
// this layer never mutates a job except through the status endpoint.
type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name"`
	CompanyEmail   string    `json:"company_email,omitempty"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"` // HTML as returned by the backend
	RequiredSkills []string  `json:"required_skills"`       // ordered by relevance
	MatchScore     *float64  `json:"match_score"`           // 0-100, absent when not scored
	Status         JobStatus `json:"status"`
	Source         string    `json:"source"`
	SourceURL      string    `json:"source_url,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	JobType        string    `json:"job_type,omitempty"`
	IsRemote       bool      `json:"is_remote,omitempty"`
	AISummary      string    `json:"ai_summary,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

// CreateJobRequest is the payload for manual job creation.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	CompanyName  string   `json:"company_name" validate:"required,min=1"`
	CompanyEmail string   `json:"company_email,omitempty" validate:"omitempty,email"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	SourceURL    string   `json:"source_url,omitempty" validate:"omitempty,url"`
	SalaryRange  string   `json:"salary_range,omitempty"`
	Skills       []string `json:"required_skills,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImportURLRequest asks the backend to import a job posting from a URL.
type ImportURLRequest struct {
	URL          string `json:"url" validate:"required,url"`
	CompanyEmail string `json:"company_email,omitempty" validate:"omitempty,email"`
}

// Validate validates the ImportURLRequest using the validator.
func (r *ImportURLRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobStats holds the aggregate job counters computed by the backend.
type JobStats struct {
	TotalJobs int `json:"total_jobs"`
	New       int `json:"new"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Rejected  int `json:"rejected"`
	Offer     int `json:"offer"`
}

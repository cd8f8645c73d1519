package types

import "github.com/go-playground/validator/v10"

// EmailStatus is the delivery state of an outreach email.
type EmailStatus string

// Email statuses as defined by the backend.
const (
	EmailStatusDraft     EmailStatus = "draft"
	EmailStatusScheduled EmailStatus = "scheduled"
	EmailStatusQueued    EmailStatus = "queued"
	EmailStatusSending   EmailStatus = "sending"
	EmailStatusSent      EmailStatus = "sent"
	EmailStatusDelivered EmailStatus = "delivered"
	EmailStatusFailed    EmailStatus = "failed"
)

// EmailStatuses lists every email status in display order.
func EmailStatuses() []EmailStatus {
	return []EmailStatus{
		EmailStatusDraft, EmailStatusScheduled, EmailStatusQueued, EmailStatusSending,
		EmailStatusSent, EmailStatusDelivered, EmailStatusFailed,
	}
}

// Email is an outreach email tracked by the backend.
type Email struct {
	ID          int64       `json:"id"`
	JobID       *int64      `json:"job_id"`
	ToEmail     string      `json:"to_email"`
	Subject     string      `json:"subject"`
	Body        string      `json:"body"`
	Status      EmailStatus `json:"status"`
	ScheduledAt *string     `json:"scheduled_at"`
	SentAt      *string     `json:"sent_at"`
	CreatedAt   string      `json:"created_at"`
}

// IsDraft reports whether the email is still a draft. Send, schedule and
// delete are only offered for drafts; the backend is the final authority.
func (e *Email) IsDraft() bool {
	return e.Status == EmailStatusDraft
}

// CreateEmailRequest is the payload for creating a draft email.
type CreateEmailRequest struct {
	JobID   *int64 `json:"job_id,omitempty"`
	ToEmail string `json:"to_email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1"`
	Body    string `json:"body" validate:"required,min=1"`
}

// Validate validates the CreateEmailRequest using the validator.
func (r *CreateEmailRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchSendRequest sends several draft emails with a delay between each.
type BatchSendRequest struct {
	EmailIDs     []int64 `json:"email_ids" validate:"required,min=1"`
	DelaySeconds int     `json:"delay_seconds" validate:"gte=0"`
}

// Validate validates the BatchSendRequest using the validator.
func (r *BatchSendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GeneratedEmail is the output of the backend's email generation endpoints.
type GeneratedEmail struct {
	Subject         string   `json:"subject"`
	Body            string   `json:"body"`
	MatchedSkills   []string `json:"matched_skills,omitempty"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// GenerateBasicRequest generates an email for a saved job with optional
// free-form context.
type GenerateBasicRequest struct {
	JobID             int64  `json:"job_id" validate:"required"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// GenerateFromResumeRequest generates an email grounded on resume text.
type GenerateFromResumeRequest struct {
	JobID              int64  `json:"job_id" validate:"required"`
	ResumeText         string `json:"resume_text" validate:"required,min=1"`
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

// GenerateFromContextRequest generates an email from free-form context only.
type GenerateFromContextRequest struct {
	Context     string `json:"context" validate:"required,min=1"`
	JobTitle    string `json:"job_title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Validate validates the GenerateFromResumeRequest using the validator.
func (r *GenerateFromResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateFromContextRequest using the validator.
func (r *GenerateFromContextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateAutomatedRequest generates an email fully automatically for a job.
type GenerateAutomatedRequest struct {
	JobID int64 `json:"job_id" validate:"required"`
}

// EmailStats holds the aggregate email counters computed by the backend.
type EmailStats struct {
	TotalDrafts    int `json:"total_drafts"`
	TotalSent      int `json:"total_sent"`
	TotalFailed    int `json:"total_failed"`
	TotalScheduled int `json:"total_scheduled"`
	SentLast24h    int `json:"sent_last_24h"`
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonathan/jobdeck/internal/types"
)

// ListEmails lists emails, optionally filtered by status and a trailing
// time window in hours (0 means no window).
func (c *Client) ListEmails(ctx context.Context, status types.EmailStatus, hoursAgo int) ([]types.Email, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status_filter", string(status))
	}
	if hoursAgo > 0 {
		query.Set("hours_ago", strconv.Itoa(hoursAgo))
	}

	var emails []types.Email
	if err := c.do(ctx, http.MethodGet, "/emails", query, nil, &emails, "email_list"); err != nil {
		return nil, err
	}
	return emails, nil
}

// GetEmail fetches a single email.
func (c *Client) GetEmail(ctx context.Context, id int64) (*types.Email, error) {
	var email types.Email
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/emails/%d", id), nil, nil, &email, "email"); err != nil {
		return nil, err
	}
	return &email, nil
}

// CreateEmail creates a draft email.
func (c *Client) CreateEmail(ctx context.Context, req *types.CreateEmailRequest) (*types.Email, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var email types.Email
	if err := c.do(ctx, http.MethodPost, "/emails", nil, req, &email, "email"); err != nil {
		return nil, err
	}
	return &email, nil
}

// SendEmail sends a draft immediately. The backend rejects non-drafts.
func (c *Client) SendEmail(ctx context.Context, id int64) (*types.Email, error) {
	var email types.Email
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/emails/%d/send", id), nil, nil, &email, "email"); err != nil {
		return nil, err
	}
	return &email, nil
}

// ScheduleEmail schedules a draft for later sending. scheduledAt is passed
// through as-is; the backend owns parsing and validation.
func (c *Client) ScheduleEmail(ctx context.Context, id int64, scheduledAt string) (*types.Email, error) {
	query := url.Values{"scheduled_at": {scheduledAt}}
	var email types.Email
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/emails/%d/schedule", id), query, nil, &email, "email"); err != nil {
		return nil, err
	}
	return &email, nil
}

// BatchSendEmails sends several drafts with a fixed delay between them.
func (c *Client) BatchSendEmails(ctx context.Context, ids []int64, delaySeconds int) error {
	req := types.BatchSendRequest{EmailIDs: ids, DelaySeconds: delaySeconds}
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/emails/batch-send", nil, &req, nil, "")
}

// DeleteEmail deletes an email. Only drafts are deletable; the UI hides the
// action for other statuses and the backend enforces it.
func (c *Client) DeleteEmail(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/emails/%d", id), nil, nil, nil, "")
}

// RecentEmails fetches emails from the last N hours.
func (c *Client) RecentEmails(ctx context.Context, hours int) ([]types.Email, error) {
	var emails []types.Email
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/emails/recent/%d", hours), nil, nil, &emails, "email_list"); err != nil {
		return nil, err
	}
	return emails, nil
}

// EmailStats fetches the aggregate email counters.
func (c *Client) EmailStats(ctx context.Context) (*types.EmailStats, error) {
	var stats types.EmailStats
	if err := c.do(ctx, http.MethodGet, "/emails/stats", nil, nil, &stats, "email_stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GenerateEmailBasic generates email content for a saved job.
func (c *Client) GenerateEmailBasic(ctx context.Context, jobID int64, additionalContext string) (*types.GeneratedEmail, error) {
	req := types.GenerateBasicRequest{JobID: jobID, AdditionalContext: additionalContext}
	var generated types.GeneratedEmail
	if err := c.do(ctx, http.MethodPost, "/emails/generate/basic", nil, &req, &generated, "generated_email"); err != nil {
		return nil, err
	}
	return &generated, nil
}

// GenerateEmailFromResume generates email content grounded on resume text.
func (c *Client) GenerateEmailFromResume(ctx context.Context, jobID int64, resumeText, instructions string) (*types.GeneratedEmail, error) {
	req := types.GenerateFromResumeRequest{JobID: jobID, ResumeText: resumeText, CustomInstructions: instructions}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var generated types.GeneratedEmail
	if err := c.do(ctx, http.MethodPost, "/emails/generate/resume-based", nil, &req, &generated, "generated_email"); err != nil {
		return nil, err
	}
	return &generated, nil
}

// GenerateEmailFromContext generates email content from free-form context.
func (c *Client) GenerateEmailFromContext(ctx context.Context, context_, jobTitle, companyName string) (*types.GeneratedEmail, error) {
	req := types.GenerateFromContextRequest{Context: context_, JobTitle: jobTitle, CompanyName: companyName}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var generated types.GeneratedEmail
	if err := c.do(ctx, http.MethodPost, "/emails/generate/context-based", nil, &req, &generated, "generated_email"); err != nil {
		return nil, err
	}
	return &generated, nil
}

// GenerateEmailAutomated generates email content fully automatically.
func (c *Client) GenerateEmailAutomated(ctx context.Context, jobID int64) (*types.GeneratedEmail, error) {
	req := types.GenerateAutomatedRequest{JobID: jobID}
	var generated types.GeneratedEmail
	if err := c.do(ctx, http.MethodPost, "/emails/generate/automated", nil, &req, &generated, "generated_email"); err != nil {
		return nil, err
	}
	return &generated, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jonathan/jobdeck/internal/types"
)

// ListJobs lists the user's saved jobs, optionally filtered by status.
func (c *Client) ListJobs(ctx context.Context, status types.JobStatus) ([]types.Job, error) {
	var query url.Values
	if status != "" {
		if !status.Valid() {
			return nil, fmt.Errorf("invalid job status filter %q", status)
		}
		query = url.Values{"status_filter": {string(status)}}
	}

	var jobs []types.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", query, nil, &jobs, "job_list"); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single saved job.
func (c *Client) GetJob(ctx context.Context, id int64) (*types.Job, error) {
	var job types.Job
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, &job, "job"); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob creates a job from manual entry.
func (c *Client) CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var job types.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, req, &job, "job"); err != nil {
		return nil, err
	}
	return &job, nil
}

// ImportJobFromURL asks the backend to scrape and save a job posting URL.
func (c *Client) ImportJobFromURL(ctx context.Context, rawURL, companyEmail string) (*types.Job, error) {
	req := types.ImportURLRequest{URL: rawURL, CompanyEmail: companyEmail}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var job types.Job
	if err := c.do(ctx, http.MethodPost, "/jobs/import-url", nil, &req, &job, "job"); err != nil {
		return nil, err
	}
	return &job, nil
}

// SearchJobs runs the basic keyword/location search.
func (c *Client) SearchJobs(ctx context.Context, query, location string, sources []string) ([]types.JobSearchResult, error) {
	req := types.SearchRequest{Query: query, Location: location, Sources: sources, Limit: 20}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var results []types.JobSearchResult
	if err := c.do(ctx, http.MethodPost, "/jobs/search", nil, &req, &results, "search_results"); err != nil {
		return nil, err
	}
	return results, nil
}

// AdvancedSearch runs the multi-filter search.
func (c *Client) AdvancedSearch(ctx context.Context, params *types.AdvancedSearchParams) ([]types.JobSearchResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var results []types.JobSearchResult
	if err := c.do(ctx, http.MethodPost, "/jobs/search/advanced", nil, params, &results, "search_results"); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchFreeSources runs the aggregated search across the free job boards.
// Result order is whatever the aggregator returned; callers that filter must
// preserve it.
func (c *Client) SearchFreeSources(ctx context.Context, req *types.FreeSourceSearchRequest) (*types.FreeSourceSearchResponse, error) {
	if req.LimitPerSource == 0 {
		req.LimitPerSource = 15
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.FreeSourceSearchResponse
	if err := c.do(ctx, http.MethodPost, "/jobs/search/free", nil, req, &resp, "free_search_response"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFreeSources lists the free job boards the backend can query.
func (c *Client) ListFreeSources(ctx context.Context) ([]types.FreeSource, error) {
	var resp struct {
		Sources []types.FreeSource `json:"sources"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs/sources/free", nil, nil, &resp, ""); err != nil {
		return nil, err
	}
	return resp.Sources, nil
}

// UpdateJobStatus transitions a job to a new application status.
func (c *Client) UpdateJobStatus(ctx context.Context, id int64, status types.JobStatus) (*types.Job, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid job status %q", status)
	}

	query := url.Values{"new_status": {string(status)}}
	var job types.Job
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d/status", id), query, nil, &job, "job"); err != nil {
		return nil, err
	}
	return &job, nil
}

// JobStats fetches the aggregate job counters.
func (c *Client) JobStats(ctx context.Context) (*types.JobStats, error) {
	var stats types.JobStats
	if err := c.do(ctx, http.MethodGet, "/jobs/stats", nil, nil, &stats, "job_stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

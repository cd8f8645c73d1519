package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/jobdeck/internal/types"
)

func (s *Server) handleJobList(w http.ResponseWriter, r *http.Request) {
	statusFilter := types.JobStatus(r.URL.Query().Get("status"))
	if statusFilter != "" && !statusFilter.Valid() {
		statusFilter = ""
	}

	jobs, err := s.api.ListJobs(r.Context(), statusFilter)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "jobs.html", s.pageData(r, map[string]any{
		"Jobs":         jobs,
		"StatusFilter": statusFilter,
		"Statuses":     types.JobStatuses(),
	}))
}

func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	job, err := s.api.GetJob(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "job_detail.html", s.pageData(r, map[string]any{
		"Job":      job,
		"Statuses": types.JobStatuses(),
	}))
}

// handleJobStatusUpdate patches the status then redirects back so the list
// re-fetches in full.
func (s *Server) handleJobStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	status := types.JobStatus(r.FormValue("status"))
	if _, err := s.api.UpdateJobStatus(r.Context(), id, status); err != nil {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, redirectTarget(r, "/jobs"), http.StatusSeeOther)
}

func (s *Server) handleJobNewPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "job_new.html", s.pageData(r, nil))
}

// handleJobCreate creates a job from the manual-entry form.
func (s *Server) handleJobCreate(w http.ResponseWriter, r *http.Request) {
	req := types.CreateJobRequest{
		Title:        strings.TrimSpace(r.FormValue("title")),
		CompanyName:  strings.TrimSpace(r.FormValue("company_name")),
		CompanyEmail: strings.TrimSpace(r.FormValue("company_email")),
		Location:     strings.TrimSpace(r.FormValue("location")),
		Description:  r.FormValue("description"),
		SourceURL:    strings.TrimSpace(r.FormValue("source_url")),
		SalaryRange:  strings.TrimSpace(r.FormValue("salary_range")),
		Skills:       splitSkills(r.FormValue("skills")),
	}
	if err := req.Validate(); err != nil {
		s.render(w, http.StatusBadRequest, "job_new.html", s.pageData(r, map[string]any{
			"Error": "Title and company name are required; email and URL fields must be well-formed.",
			"Form":  req,
		}))
		return
	}

	job, err := s.api.CreateJob(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/jobs/"+strconv.FormatInt(job.ID, 10), http.StatusSeeOther)
}

// handleJobImport creates a job by having the backend scrape a posting URL.
func (s *Server) handleJobImport(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.FormValue("url"))
	companyEmail := strings.TrimSpace(r.FormValue("company_email"))

	job, err := s.api.ImportJobFromURL(r.Context(), url, companyEmail)
	if err != nil {
		s.render(w, http.StatusBadRequest, "job_new.html", s.pageData(r, map[string]any{
			"ImportError": err.Error(),
			"ImportURL":   url,
		}))
		return
	}

	http.Redirect(w, r, "/jobs/"+strconv.FormatInt(job.ID, 10), http.StatusSeeOther)
}

// handleGenerateEmail runs one of the generation variants for a job and
// saves the result as a draft addressed to the company.
func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	job, err := s.api.GetJob(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if job.CompanyEmail == "" {
		s.render(w, http.StatusBadRequest, "job_detail.html", s.pageData(r, map[string]any{
			"Job":      job,
			"Statuses": types.JobStatuses(),
			"Error":    "This job has no company email; add one before generating outreach.",
		}))
		return
	}

	var generated *types.GeneratedEmail
	switch variant := r.FormValue("variant"); variant {
	case "automated":
		generated, err = s.api.GenerateEmailAutomated(r.Context(), id)
	case "resume":
		user := s.sessions.User()
		if user == nil || user.ResumeText == "" {
			s.render(w, http.StatusBadRequest, "job_detail.html", s.pageData(r, map[string]any{
				"Job":      job,
				"Statuses": types.JobStatuses(),
				"Error":    "Your profile has no resume text; add one before resume-based generation.",
			}))
			return
		}
		generated, err = s.api.GenerateEmailFromResume(r.Context(), id, user.ResumeText, r.FormValue("instructions"))
	default:
		generated, err = s.api.GenerateEmailBasic(r.Context(), id, r.FormValue("context"))
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	draft := types.CreateEmailRequest{
		JobID:   &id,
		ToEmail: job.CompanyEmail,
		Subject: generated.Subject,
		Body:    generated.Body,
	}
	if _, err := s.api.CreateEmail(r.Context(), &draft); err != nil {
		s.fail(w, r, err)
		return
	}

	http.Redirect(w, r, "/emails", http.StatusSeeOther)
}

// splitSkills parses a comma-separated skills field.
func splitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// redirectTarget sends the user back where the form said they came from,
// restricted to local paths.
func redirectTarget(r *http.Request, fallback string) string {
	back := r.FormValue("back")
	if strings.HasPrefix(back, "/") && !strings.HasPrefix(back, "//") {
		return back
	}
	return fallback
}

package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/jobdeck/internal/types"
)

func (s *Server) handleEmailList(w http.ResponseWriter, r *http.Request) {
	statusFilter := types.EmailStatus(r.URL.Query().Get("status"))

	emails, err := s.api.ListEmails(r.Context(), statusFilter, 0)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var draftIDs []int64
	for _, e := range emails {
		if e.IsDraft() {
			draftIDs = append(draftIDs, e.ID)
		}
	}

	s.render(w, http.StatusOK, "emails.html", s.pageData(r, map[string]any{
		"Emails":       emails,
		"StatusFilter": statusFilter,
		"Statuses":     types.EmailStatuses(),
		"DraftCount":   len(draftIDs),
	}))
}

// handleEmailSend sends one draft immediately. The backend refuses non-draft
// statuses; we surface its error as-is.
func (s *Server) handleEmailSend(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := s.api.SendEmail(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/emails", http.StatusSeeOther)
}

// handleEmailSchedule schedules a draft for the datetime given on the form.
// The value is passed through untouched; the backend owns parsing.
func (s *Server) handleEmailSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	scheduledAt := strings.TrimSpace(r.FormValue("scheduled_at"))
	if scheduledAt == "" {
		http.Redirect(w, r, "/emails", http.StatusSeeOther)
		return
	}

	if _, err := s.api.ScheduleEmail(r.Context(), id, scheduledAt); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/emails", http.StatusSeeOther)
}

// handleEmailDelete deletes a draft then redirects so the list re-fetches.
// There is no local list to patch; the refetch is the consistency mechanism.
func (s *Server) handleEmailDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DeleteEmail(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/emails", http.StatusSeeOther)
}

// handleEmailBatchSend sends the checked drafts with a spacing delay.
func (s *Server) handleEmailBatchSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, err)
		return
	}

	var ids []int64
	for _, raw := range r.Form["email_ids"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		http.Redirect(w, r, "/emails", http.StatusSeeOther)
		return
	}

	delay := 5
	if raw := r.FormValue("delay_seconds"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			delay = parsed
		}
	}

	if err := s.api.BatchSendEmails(r.Context(), ids, delay); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/emails", http.StatusSeeOther)
}

package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/jobdeck/internal/content"
	"github.com/jonathan/jobdeck/internal/search"
	"github.com/jonathan/jobdeck/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateSet holds one compiled template per page, each sharing layout.html.
type templateSet struct {
	pages map[string]*template.Template
}

var pageTemplates = []string{
	"login.html",
	"register.html",
	"dashboard.html",
	"jobs.html",
	"job_detail.html",
	"job_new.html",
	"search.html",
	"emails.html",
	"error.html",
}

func loadTemplates() (*templateSet, error) {
	set := &templateSet{pages: make(map[string]*template.Template, len(pageTemplates))}
	for _, page := range pageTemplates {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs()).ParseFS(
			templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		set.pages[page] = tmpl
	}
	return set, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"jobStatusClass":   jobStatusClass,
		"emailStatusClass": emailStatusClass,
		"fmtDateTime":      fmtDateTime,
		"fmtDateTimePtr":   fmtDateTimePtr,
		"excerpt":          func(s string) string { return content.Excerpt(s, 220) },
		"plainText":        content.TextOrRaw,
		"score":            fmtScore,
		"facetLabel":       facetLabel,
		"join":             strings.Join,
	}
}

// jobStatusClass maps a job status to its badge style.
func jobStatusClass(status types.JobStatus) string {
	switch status {
	case types.JobStatusNew:
		return "badge badge-blue"
	case types.JobStatusApplied:
		return "badge badge-yellow"
	case types.JobStatusInterview:
		return "badge badge-purple"
	case types.JobStatusOffer:
		return "badge badge-green"
	case types.JobStatusRejected:
		return "badge badge-red"
	}
	return "badge badge-gray"
}

// emailStatusClass maps an email status to its badge style.
func emailStatusClass(status types.EmailStatus) string {
	switch status {
	case types.EmailStatusDraft:
		return "badge badge-gray"
	case types.EmailStatusScheduled, types.EmailStatusQueued:
		return "badge badge-yellow"
	case types.EmailStatusSending:
		return "badge badge-blue"
	case types.EmailStatusSent, types.EmailStatusDelivered:
		return "badge badge-green"
	case types.EmailStatusFailed:
		return "badge badge-red"
	}
	return "badge badge-gray"
}

// fmtDateTime renders a backend timestamp string for display, passing the
// raw value through when it does not parse.
func fmtDateTime(s string) string {
	if t, ok := search.ParsePostedDate(s); ok {
		return t.Format("Jan 2, 2006 15:04")
	}
	return s
}

func fmtDateTimePtr(s *string) string {
	if s == nil {
		return "—"
	}
	return fmtDateTime(*s)
}

func fmtScore(score *float64) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%.0f%%", *score)
}

// facetLabel renders a classifier facet value, marking Unknown explicitly
// instead of silently defaulting it.
func facetLabel(v string) string {
	switch v {
	case string(search.EmploymentUnknown):
		return "unclassified"
	}
	return strings.ReplaceAll(v, "_", " ")
}

// render writes a page. Encoding errors at this point can only be logged;
// part of the response may already be on the wire.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := s.templates.pages[page]
	if !ok {
		log.Printf("[web] unknown template %s", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("[web] failed to render %s: %v", page, err)
	}
}

// pageData wraps per-page data with the fields the layout needs.
func (s *Server) pageData(r *http.Request, data map[string]any) map[string]any {
	if data == nil {
		data = make(map[string]any)
	}
	data["Authenticated"] = s.sessions.IsAuthenticated()
	data["CurrentUser"] = s.sessions.User()
	data["Path"] = r.URL.Path
	if _, ok := data["Now"]; !ok {
		data["Now"] = time.Now()
	}
	return data
}

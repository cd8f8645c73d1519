package web

import (
	"net/http"
	"time"

	"github.com/jonathan/jobdeck/internal/api"
	"github.com/jonathan/jobdeck/internal/search"
	"github.com/jonathan/jobdeck/internal/types"
)

// freeSource is one selectable job board on the search form.
type freeSource struct {
	ID      string
	Name    string
	Default bool
}

// freeSources is the fixed board list offered on the search page. The
// backend exposes its own list endpoint, but the form renders this static
// set so the page works even when the backend's source registry is down.
var freeSources = []freeSource{
	{ID: "remotive", Name: "Remotive", Default: true},
	{ID: "remoteok", Name: "RemoteOK", Default: true},
	{ID: "weworkremotely", Name: "We Work Remotely", Default: true},
	{ID: "jobicy", Name: "Jobicy", Default: true},
	{ID: "arbeitnow", Name: "Arbeitnow"},
	{ID: "himalayas", Name: "Himalayas"},
	{ID: "nodesk", Name: "NoDesk"},
	{ID: "findwork", Name: "Findwork"},
}

// classifiedResult pairs a raw search result with its derived facets so the
// template can badge each row.
type classifiedResult struct {
	types.JobSearchResult
	Facets search.Classification
}

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "search.html", s.pageData(r, map[string]any{
		"Sources": freeSources,
		"Filters": search.DefaultConfig(),
	}))
}

// handleSearch runs an aggregated free-source search, then applies the
// selected facet filters locally. Filtering happens after the fetch so
// changing a filter would not require re-querying the boards; the displayed
// count is post-filter while TotalFound is the aggregator's raw count.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keywords := r.FormValue("keywords") // triggers form parsing
	selected := r.Form["sources"]
	if len(selected) == 0 {
		for _, src := range freeSources {
			if src.Default {
				selected = append(selected, src.ID)
			}
		}
	}

	filters, err := parseFilters(r)
	if err != nil {
		s.render(w, http.StatusBadRequest, "search.html", s.pageData(r, map[string]any{
			"Sources":  freeSources,
			"Filters":  search.DefaultConfig(),
			"Keywords": keywords,
			"Error":    err.Error(),
		}))
		return
	}

	req := types.FreeSourceSearchRequest{
		Keywords: keywords,
		Sources:  selected,
		SaveToDB: r.FormValue("save_to_db") == "on",
	}
	resp, err := s.api.SearchFreeSources(r.Context(), &req)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.fail(w, r, err)
			return
		}
		s.render(w, http.StatusBadRequest, "search.html", s.pageData(r, map[string]any{
			"Sources":  freeSources,
			"Filters":  filters,
			"Keywords": keywords,
			"Selected": selectedSet(selected),
			"SaveToDB": req.SaveToDB,
			"Error":    err.Error(),
		}))
		return
	}

	filtered := filters.Apply(resp.Jobs, time.Now())
	results := make([]classifiedResult, 0, len(filtered))
	for _, job := range filtered {
		results = append(results, classifiedResult{JobSearchResult: job, Facets: search.Classify(job)})
	}

	s.render(w, http.StatusOK, "search.html", s.pageData(r, map[string]any{
		"Sources":         freeSources,
		"Filters":         filters,
		"Keywords":        keywords,
		"Selected":        selectedSet(selected),
		"SaveToDB":        req.SaveToDB,
		"Searched":        true,
		"Results":         results,
		"ShownCount":      len(results),
		"TotalFound":      resp.TotalFound,
		"NewSaved":        resp.NewSaved,
		"SourcesSearched": resp.SourcesSearched,
		"Message":         resp.Message,
	}))
}

// parseFilters builds a filter config from the form's facet selectors.
func parseFilters(r *http.Request) (search.Config, error) {
	cfg := search.DefaultConfig()

	var err error
	if cfg.WorkMode, err = search.ParseWorkMode(r.FormValue("work_mode")); err != nil {
		return cfg, err
	}
	if cfg.EmploymentType, err = search.ParseEmploymentType(r.FormValue("employment_type")); err != nil {
		return cfg, err
	}
	if cfg.ExperienceLevel, err = search.ParseExperienceLevel(r.FormValue("experience_level")); err != nil {
		return cfg, err
	}
	if cfg.PostedWithin, err = search.ParsePostedWithin(r.FormValue("posted_within")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func selectedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

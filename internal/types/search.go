package types

import "github.com/go-playground/validator/v10"

// JobSearchResult is one listing returned by the multi-source aggregated
// search. Results are transient: they exist only for the duration of a
// search response and carry no identity beyond their position.
type JobSearchResult struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Source      string   `json:"source"`
	URL         string   `json:"url,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty"`
	PostedDate  string   `json:"posted_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsRemote    bool     `json:"is_remote,omitempty"`
	CompanyLogo string   `json:"company_logo,omitempty"`
	JobType     string   `json:"job_type,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SearchRequest is the basic keyword/location search payload.
type SearchRequest struct {
	Query    string   `json:"query" validate:"required,min=1"`
	Location string   `json:"location,omitempty"`
	Sources  []string `json:"sources,omitempty"`
	Limit    int      `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AdvancedSearchParams is the advanced multi-filter search payload. The
// enumerated fields accept the sentinel "any".
type AdvancedSearchParams struct {
	Keywords        string   `json:"keywords" validate:"required,min=1"`
	Country         string   `json:"country,omitempty"`
	City            string   `json:"city,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"job_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship any"`
	WorkMode        string   `json:"work_mode,omitempty" validate:"omitempty,oneof=remote onsite hybrid any"`
	ExperienceLevel string   `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior lead any"`
	PostedWithin    string   `json:"posted_within,omitempty" validate:"omitempty,oneof=24h 48h 1week 1month any"`
	VisaSponsorship bool     `json:"visa_sponsorship,omitempty"`
	Sources         []string `json:"sources,omitempty"`
	Limit           int      `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the AdvancedSearchParams using the validator.
func (r *AdvancedSearchParams) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FreeSourceSearchRequest searches the free job boards in parallel on the
// backend and optionally saves new results to the user's job list.
type FreeSourceSearchRequest struct {
	Keywords       string   `json:"keywords" validate:"required,min=1"`
	Sources        []string `json:"sources" validate:"required,min=1"`
	LimitPerSource int      `json:"limit_per_source,omitempty" validate:"gte=0"`
	SaveToDB       bool     `json:"save_to_db"`
}

// Validate validates the FreeSourceSearchRequest using the validator.
func (r *FreeSourceSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FreeSourceSearchResponse is the aggregated result of a free-source search.
// Jobs preserve the upstream aggregator's order.
type FreeSourceSearchResponse struct {
	Message         string            `json:"message"`
	SourcesSearched []string          `json:"sources_searched"`
	TotalFound      int               `json:"total_found"`
	NewSaved        int               `json:"new_saved"`
	Jobs            []JobSearchResult `json:"jobs"`
}

// FreeSource describes one of the free job boards the backend can query.
type FreeSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

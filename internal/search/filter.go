package search

import (
	"strings"
	"time"

	"github.com/jonathan/jobdeck/internal/types"
)

// Config holds the four facet selectors. The zero value selects nothing;
// use DefaultConfig or the Parse helpers to build one. Selectors set to the
// "any" sentinel are no-ops.
type Config struct {
	WorkMode        WorkMode
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel
	PostedWithin    PostedWithin
}

// DefaultConfig returns a config with every selector set to "any", which
// passes all results through unchanged.
func DefaultConfig() Config {
	return Config{
		WorkMode:        WorkModeAny,
		EmploymentType:  EmploymentAny,
		ExperienceLevel: ExperienceAny,
		PostedWithin:    PostedAny,
	}
}

// Active reports whether any selector is set to a value other than "any".
func (c Config) Active() bool {
	return c.WorkMode != WorkModeAny ||
		c.EmploymentType != EmploymentAny ||
		c.ExperienceLevel != ExperienceAny ||
		c.PostedWithin != PostedAny
}

// Apply filters results down to those satisfying every active selector.
// The filter is conjunctive and stable: element order is preserved, never
// re-ranked. Recency is computed against the supplied now, so callers own
// the clock; the same input at different instants may filter differently.
// Apply never mutates its input and always returns a fresh slice.
func (c Config) Apply(results []types.JobSearchResult, now time.Time) []types.JobSearchResult {
	filtered := make([]types.JobSearchResult, 0, len(results))
	for _, r := range results {
		if c.matches(r, now) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (c Config) matches(r types.JobSearchResult, now time.Time) bool {
	return matchWorkMode(r, c.WorkMode) &&
		matchEmploymentType(r, c.EmploymentType) &&
		matchExperienceLevel(r, c.ExperienceLevel) &&
		matchPostedWithin(r, c.PostedWithin, now)
}

// matchWorkMode classifies remote from the is_remote flag or a "remote"
// substring in the location; onsite is the complement. Hybrid has no
// positive detection branch, so a hybrid selection matches nothing.
func matchWorkMode(r types.JobSearchResult, mode WorkMode) bool {
	if mode == WorkModeAny {
		return true
	}
	location := strings.ToLower(r.Location)
	remote := r.IsRemote || strings.Contains(location, "remote")
	switch mode {
	case WorkModeRemote:
		return remote
	case WorkModeOnsite:
		return !remote
	}
	return false
}

// matchEmploymentType matches on job_type substrings, falling back to the
// title for freelance and internship. An empty job_type counts as full-time:
// absence of data defaults to the full-time assumption.
func matchEmploymentType(r types.JobSearchResult, et EmploymentType) bool {
	if et == EmploymentAny {
		return true
	}
	jobType := strings.ToLower(r.JobType)
	title := strings.ToLower(r.Title)
	switch et {
	case EmploymentFullTime:
		return strings.Contains(jobType, "full") || jobType == ""
	case EmploymentPartTime:
		return strings.Contains(jobType, "part")
	case EmploymentContract:
		return strings.Contains(jobType, "contract")
	case EmploymentFreelance:
		return strings.Contains(jobType, "freelance") || strings.Contains(title, "freelance")
	case EmploymentInternship:
		return strings.Contains(jobType, "intern") || strings.Contains(title, "intern")
	}
	return false
}

// matchExperienceLevel matches seniority tokens in the title only. Mid is
// the default bucket: it matches a "mid" token or the absence of the other
// seniority tokens, so a title with no signal at all still counts as mid.
func matchExperienceLevel(r types.JobSearchResult, level ExperienceLevel) bool {
	if level == ExperienceAny {
		return true
	}
	title := strings.ToLower(r.Title)
	switch level {
	case ExperienceEntry:
		return strings.Contains(title, "junior") || strings.Contains(title, "entry") || strings.Contains(title, "jr")
	case ExperienceMid:
		return strings.Contains(title, "mid") ||
			(!strings.Contains(title, "senior") && !strings.Contains(title, "junior") && !strings.Contains(title, "lead"))
	case ExperienceSenior:
		return strings.Contains(title, "senior") || strings.Contains(title, "sr")
	case ExperienceLead:
		return strings.Contains(title, "lead") || strings.Contains(title, "manager") ||
			strings.Contains(title, "head") || strings.Contains(title, "director")
	}
	return false
}

// matchPostedWithin buckets by calendar-day difference from now. Missing or
// unparsable dates fail open: a record with a bad date always passes rather
// than rejecting the whole pipeline for one malformed upstream field.
func matchPostedWithin(r types.JobSearchResult, p PostedWithin, now time.Time) bool {
	if p == PostedAny {
		return true
	}
	if r.PostedDate == "" {
		return true
	}
	posted, ok := ParsePostedDate(r.PostedDate)
	if !ok {
		return true
	}
	diffDays := now.Sub(posted).Hours() / 24
	return diffDays <= p.maxAgeDays()
}

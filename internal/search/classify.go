package search

import (
	"strings"

	"github.com/jonathan/jobdeck/internal/types"
)

// Classification is the normalized view of one raw search result. Unlike
// the filter predicates, which silently default unsignaled listings into
// full_time and mid, the classifier reports Unknown explicitly so callers
// can show that a facet was inferred from absence rather than evidence.
type Classification struct {
	WorkMode        WorkMode
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel
}

// Classify derives the facet values for a single result from the same text
// heuristics the filter uses. Work mode is total (remote or onsite, never
// hybrid); the other two facets report Unknown when no token matches.
func Classify(r types.JobSearchResult) Classification {
	return Classification{
		WorkMode:        classifyWorkMode(r),
		EmploymentType:  classifyEmploymentType(r),
		ExperienceLevel: classifyExperienceLevel(r),
	}
}

func classifyWorkMode(r types.JobSearchResult) WorkMode {
	if r.IsRemote || strings.Contains(strings.ToLower(r.Location), "remote") {
		return WorkModeRemote
	}
	return WorkModeOnsite
}

func classifyEmploymentType(r types.JobSearchResult) EmploymentType {
	jobType := strings.ToLower(r.JobType)
	title := strings.ToLower(r.Title)
	switch {
	case strings.Contains(jobType, "full"):
		return EmploymentFullTime
	case strings.Contains(jobType, "part"):
		return EmploymentPartTime
	case strings.Contains(jobType, "contract"):
		return EmploymentContract
	case strings.Contains(jobType, "freelance") || strings.Contains(title, "freelance"):
		return EmploymentFreelance
	case strings.Contains(jobType, "intern") || strings.Contains(title, "intern"):
		return EmploymentInternship
	}
	return EmploymentUnknown
}

func classifyExperienceLevel(r types.JobSearchResult) ExperienceLevel {
	title := strings.ToLower(r.Title)
	switch {
	case strings.Contains(title, "senior") || strings.Contains(title, "sr"):
		return ExperienceSenior
	case strings.Contains(title, "lead") || strings.Contains(title, "manager") ||
		strings.Contains(title, "head") || strings.Contains(title, "director"):
		return ExperienceLead
	case strings.Contains(title, "junior") || strings.Contains(title, "entry") || strings.Contains(title, "jr"):
		return ExperienceEntry
	case strings.Contains(title, "mid"):
		return ExperienceMid
	}
	return ExperienceUnknown
}

// Package search implements the normalization-and-filter pipeline applied to
// aggregated multi-source job search results. Upstream boards return
// weakly-typed, free-text listings, so every facet is derived from heuristic
// text inspection rather than structured fields.
package search

import "fmt"

// WorkMode is the remote/onsite facet.
type WorkMode string

// Work mode facet values. Hybrid is accepted as a filter selection but the
// heuristic has no positive detection for it, so no result ever matches.
const (
	WorkModeAny    WorkMode = "any"
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

// EmploymentType is the employment-arrangement facet.
type EmploymentType string

// Employment type facet values. Unknown is a classifier output only, never a
// filter selection: a listing with no employment signal classifies Unknown
// but still passes the full_time filter (absence of data defaults to a
// full-time assumption).
const (
	EmploymentAny        EmploymentType = "any"
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentFreelance  EmploymentType = "freelance"
	EmploymentInternship EmploymentType = "internship"
	EmploymentUnknown    EmploymentType = "unknown"
)

// ExperienceLevel is the seniority facet.
type ExperienceLevel string

// Experience level facet values. Unknown is a classifier output only: a
// title with no seniority token classifies Unknown but still passes the mid
// filter (mid is the negation bucket, not a positive match).
const (
	ExperienceAny     ExperienceLevel = "any"
	ExperienceEntry   ExperienceLevel = "entry"
	ExperienceMid     ExperienceLevel = "mid"
	ExperienceSenior  ExperienceLevel = "senior"
	ExperienceLead    ExperienceLevel = "lead"
	ExperienceUnknown ExperienceLevel = "unknown"
)

// PostedWithin is the recency facet, bucketed at 1, 3, 7 and 30 days.
type PostedWithin string

// Recency facet values.
const (
	PostedAny       PostedWithin = "any"
	PostedWithin24h PostedWithin = "24h"
	PostedWithin3d  PostedWithin = "3d"
	PostedWithin1w  PostedWithin = "1week"
	PostedWithin1mo PostedWithin = "1month"
)

// maxAgeDays returns the bucket threshold in days, or 0 for "any".
func (p PostedWithin) maxAgeDays() float64 {
	switch p {
	case PostedWithin24h:
		return 1
	case PostedWithin3d:
		return 3
	case PostedWithin1w:
		return 7
	case PostedWithin1mo:
		return 30
	}
	return 0
}

// ParseWorkMode parses a work mode selector. Empty input means "any".
func ParseWorkMode(s string) (WorkMode, error) {
	switch WorkMode(s) {
	case "", WorkModeAny:
		return WorkModeAny, nil
	case WorkModeRemote, WorkModeOnsite, WorkModeHybrid:
		return WorkMode(s), nil
	}
	return "", fmt.Errorf("invalid work mode %q", s)
}

// ParseEmploymentType parses an employment type selector. Empty input means
// "any". Unknown is not a valid selection.
func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(s) {
	case "", EmploymentAny:
		return EmploymentAny, nil
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentFreelance, EmploymentInternship:
		return EmploymentType(s), nil
	}
	return "", fmt.Errorf("invalid employment type %q", s)
}

// ParseExperienceLevel parses an experience level selector. Empty input
// means "any". Unknown is not a valid selection.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(s) {
	case "", ExperienceAny:
		return ExperienceAny, nil
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead:
		return ExperienceLevel(s), nil
	}
	return "", fmt.Errorf("invalid experience level %q", s)
}

// ParsePostedWithin parses a recency selector. Empty input means "any".
func ParsePostedWithin(s string) (PostedWithin, error) {
	switch PostedWithin(s) {
	case "", PostedAny:
		return PostedAny, nil
	case PostedWithin24h, PostedWithin3d, PostedWithin1w, PostedWithin1mo:
		return PostedWithin(s), nil
	}
	return "", fmt.Errorf("invalid posted-within %q", s)
}

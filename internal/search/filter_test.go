package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdeck/internal/types"
)

// fixedNow pins the clock so recency buckets are deterministic.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) string {
	return fixedNow.Add(-time.Duration(d * 24 * float64(time.Hour))).Format(time.RFC3339)
}

func TestApply_AnyIsIdentity(t *testing.T) {
	input := []types.JobSearchResult{
		{Title: "Senior Go Engineer", Location: "Remote", IsRemote: true},
		{Title: "Junior Analyst", Location: "Berlin", JobType: "part_time"},
		{Title: "Backend Engineer", Location: "San Francisco"},
	}

	got := DefaultConfig().Apply(input, fixedNow)

	require.Len(t, got, len(input))
	assert.Equal(t, input, got)
}

func TestApply_WorkMode(t *testing.T) {
	remoteFlagged := types.JobSearchResult{Title: "Backend Engineer", Location: "San Francisco", IsRemote: true}
	remoteByLocation := types.JobSearchResult{Title: "Backend Engineer", Location: "Remote - EU"}
	onsite := types.JobSearchResult{Title: "Backend Engineer", Location: "San Francisco"}

	tests := []struct {
		name    string
		mode    WorkMode
		result  types.JobSearchResult
		matched bool
	}{
		{"is_remote flag beats onsite location", WorkModeRemote, remoteFlagged, true},
		{"remote substring in location", WorkModeRemote, remoteByLocation, true},
		{"onsite excludes flagged remote", WorkModeOnsite, remoteFlagged, false},
		{"onsite excludes remote location", WorkModeOnsite, remoteByLocation, false},
		{"onsite matches plain location", WorkModeOnsite, onsite, true},
		{"remote excludes plain location", WorkModeRemote, onsite, false},
		{"hybrid matches nothing", WorkModeHybrid, remoteFlagged, false},
		{"hybrid matches nothing onsite either", WorkModeHybrid, onsite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WorkMode = tt.mode
			got := cfg.Apply([]types.JobSearchResult{tt.result}, fixedNow)
			if tt.matched {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestApply_EmploymentType(t *testing.T) {
	tests := []struct {
		name    string
		et      EmploymentType
		result  types.JobSearchResult
		matched bool
	}{
		{"empty job_type defaults to full time", EmploymentFullTime, types.JobSearchResult{Title: "Backend Engineer"}, true},
		{"full_time token", EmploymentFullTime, types.JobSearchResult{JobType: "Full-time"}, true},
		{"part_time token", EmploymentPartTime, types.JobSearchResult{JobType: "Part-time"}, true},
		{"part_time rejects empty", EmploymentPartTime, types.JobSearchResult{Title: "Backend Engineer"}, false},
		{"contract token", EmploymentContract, types.JobSearchResult{JobType: "contract"}, true},
		{"freelance via title fallback", EmploymentFreelance, types.JobSearchResult{Title: "Freelance Designer"}, true},
		{"internship via title fallback", EmploymentInternship, types.JobSearchResult{Title: "Software Intern"}, true},
		{"internship via job_type", EmploymentInternship, types.JobSearchResult{JobType: "internship"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.EmploymentType = tt.et
			got := cfg.Apply([]types.JobSearchResult{tt.result}, fixedNow)
			if tt.matched {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestApply_ExperienceLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   ExperienceLevel
		title   string
		matched bool
	}{
		{"junior token", ExperienceEntry, "Junior Backend Engineer", true},
		{"entry token", ExperienceEntry, "Entry Level Analyst", true},
		{"no signal is not entry", ExperienceEntry, "Backend Engineer", false},
		{"no signal falls into mid bucket", ExperienceMid, "Backend Engineer", true},
		{"mid token", ExperienceMid, "Mid-level Engineer", true},
		{"senior excluded from mid", ExperienceMid, "Senior Engineer", false},
		{"senior token", ExperienceSenior, "Senior Engineer", true},
		{"sr token", ExperienceSenior, "Sr. Engineer", true},
		{"lead token", ExperienceLead, "Tech Lead", true},
		{"manager token", ExperienceLead, "Engineering Manager", true},
		{"director token", ExperienceLead, "Director of Engineering", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ExperienceLevel = tt.level
			got := cfg.Apply([]types.JobSearchResult{{Title: tt.title}}, fixedNow)
			if tt.matched {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestApply_PostedWithin(t *testing.T) {
	tests := []struct {
		name    string
		p       PostedWithin
		posted  string
		matched bool
	}{
		{"missing date always passes", PostedWithin24h, "", true},
		{"unparsable date fails open", PostedWithin24h, "a few days ago", true},
		{"half day within 24h", PostedWithin24h, daysAgo(0.5), true},
		{"two days outside 24h", PostedWithin24h, daysAgo(2), false},
		{"two days within 3d", PostedWithin3d, daysAgo(2), true},
		{"five days within 1week", PostedWithin1w, daysAgo(5), true},
		{"ten days outside 1week", PostedWithin1w, daysAgo(10), false},
		{"ten days within 1month", PostedWithin1mo, daysAgo(10), true},
		{"forty days outside 1month", PostedWithin1mo, daysAgo(40), false},
		{"bare date layout parses", PostedWithin1mo, fixedNow.AddDate(0, 0, -3).Format("2006-01-02"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PostedWithin = tt.p
			got := cfg.Apply([]types.JobSearchResult{{Title: "X", PostedDate: tt.posted}}, fixedNow)
			if tt.matched {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestApply_StableOrder(t *testing.T) {
	a := types.JobSearchResult{Title: "A Engineer", IsRemote: true}
	b := types.JobSearchResult{Title: "B Engineer", Location: "Berlin"}
	c := types.JobSearchResult{Title: "C Engineer", Location: "remote (EU)"}

	cfg := DefaultConfig()
	cfg.WorkMode = WorkModeRemote

	got := cfg.Apply([]types.JobSearchResult{a, b, c}, fixedNow)

	require.Len(t, got, 2)
	assert.Equal(t, "A Engineer", got[0].Title)
	assert.Equal(t, "C Engineer", got[1].Title)
}

// Filters are conjunctive, so applying them one facet at a time in any order
// must land on the same result set as applying them all at once.
func TestApply_FiltersCommute(t *testing.T) {
	input := []types.JobSearchResult{
		{Title: "Senior Go Engineer", Location: "Remote", IsRemote: true, JobType: "full_time", PostedDate: daysAgo(0.2)},
		{Title: "Junior Analyst", Location: "Berlin", JobType: "part_time", PostedDate: daysAgo(2)},
		{Title: "Backend Engineer", Location: "remote", PostedDate: daysAgo(6)},
		{Title: "Engineering Manager", Location: "NYC", JobType: "full_time", PostedDate: daysAgo(40)},
		{Title: "Contract DevOps", Location: "Remote", JobType: "contract"},
	}

	combined := Config{
		WorkMode:        WorkModeRemote,
		EmploymentType:  EmploymentFullTime,
		ExperienceLevel: ExperienceSenior,
		PostedWithin:    PostedWithin1w,
	}

	// Facet-at-a-time in two different orders.
	forward := input
	for _, cfg := range []Config{
		{WorkMode: WorkModeRemote, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceAny, PostedWithin: PostedAny},
		{WorkMode: WorkModeAny, EmploymentType: EmploymentFullTime, ExperienceLevel: ExperienceAny, PostedWithin: PostedAny},
		{WorkMode: WorkModeAny, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceSenior, PostedWithin: PostedAny},
		{WorkMode: WorkModeAny, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceAny, PostedWithin: PostedWithin1w},
	} {
		forward = cfg.Apply(forward, fixedNow)
	}

	backward := input
	for _, cfg := range []Config{
		{WorkMode: WorkModeAny, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceAny, PostedWithin: PostedWithin1w},
		{WorkMode: WorkModeAny, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceSenior, PostedWithin: PostedAny},
		{WorkMode: WorkModeAny, EmploymentType: EmploymentFullTime, ExperienceLevel: ExperienceAny, PostedWithin: PostedAny},
		{WorkMode: WorkModeRemote, EmploymentType: EmploymentAny, ExperienceLevel: ExperienceAny, PostedWithin: PostedAny},
	} {
		backward = cfg.Apply(backward, fixedNow)
	}

	want := combined.Apply(input, fixedNow)
	assert.Equal(t, want, forward)
	assert.Equal(t, want, backward)
	require.Len(t, want, 1)
	assert.Equal(t, "Senior Go Engineer", want[0].Title)
}

func TestApply_EndToEnd(t *testing.T) {
	input := []types.JobSearchResult{
		{Title: "Senior Contract Engineer", Location: "Remote", IsRemote: true, JobType: "contract", PostedDate: daysAgo(0.1)},
		{Title: "Backend Engineer", Location: "Chicago", JobType: "full_time", PostedDate: daysAgo(40)},
		{Title: "Mystery Role"},
	}

	cfg := DefaultConfig()
	cfg.WorkMode = WorkModeRemote
	cfg.PostedWithin = PostedWithin24h

	got := cfg.Apply(input, fixedNow)

	require.Len(t, got, 1)
	assert.Equal(t, "Senior Contract Engineer", got[0].Title)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := []types.JobSearchResult{
		{Title: "Senior Engineer", Location: "Remote"},
		{Title: "Junior Engineer", Location: "Berlin"},
	}
	cfg := DefaultConfig()
	cfg.WorkMode = WorkModeRemote

	_ = cfg.Apply(input, fixedNow)

	assert.Equal(t, "Senior Engineer", input[0].Title)
	assert.Equal(t, "Junior Engineer", input[1].Title)
	assert.Len(t, input, 2)
}

func TestConfig_Active(t *testing.T) {
	assert.False(t, DefaultConfig().Active())

	cfg := DefaultConfig()
	cfg.PostedWithin = PostedWithin24h
	assert.True(t, cfg.Active())
}

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdeck/internal/search"
	"github.com/jonathan/jobdeck/internal/types"
)

var (
	searchSources    []string
	searchLimit      int
	searchSave       bool
	searchWorkMode   string
	searchEmployment string
	searchExperience string
	searchPosted     string
	searchAPIURL     string
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search the free job boards",
	Long:  `Run an aggregated search across the free job boards and apply the facet filters locally, the same pipeline the dashboard's search page uses.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchSources, "sources", []string{"remotive", "remoteok", "weworkremotely", "jobicy"}, "Job boards to query")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 15, "Maximum results per board")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "Save new results to the job list")
	searchCmd.Flags().StringVar(&searchWorkMode, "work-mode", "any", "Work mode filter (any|remote|onsite|hybrid)")
	searchCmd.Flags().StringVar(&searchEmployment, "employment-type", "any", "Employment filter (any|full_time|part_time|contract|freelance|internship)")
	searchCmd.Flags().StringVar(&searchExperience, "experience-level", "any", "Experience filter (any|entry|mid|senior|lead)")
	searchCmd.Flags().StringVar(&searchPosted, "posted-within", "any", "Recency filter (any|24h|3d|1week|1month)")
	searchCmd.Flags().StringVar(&searchAPIURL, "api-url", "", "Backend API base URL (defaults to JOBDECK_API_URL)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	filters, err := parseSearchFilters()
	if err != nil {
		return err
	}

	store, err := openSession()
	if err != nil {
		return err
	}
	if !store.IsAuthenticated() {
		return fmt.Errorf("not logged in; run `jobdeck login` first")
	}
	client := newClient(searchAPIURL, store)

	req := types.FreeSourceSearchRequest{
		Keywords:       strings.Join(args, " "),
		Sources:        searchSources,
		LimitPerSource: searchLimit,
		SaveToDB:       searchSave,
	}
	resp, err := client.SearchFreeSources(cmd.Context(), &req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	filtered := filters.Apply(resp.Jobs, time.Now())

	fmt.Printf("Found %d results from %s; %d shown after filters",
		resp.TotalFound, strings.Join(resp.SourcesSearched, ", "), len(filtered))
	if resp.NewSaved > 0 {
		fmt.Printf(" (%d new saved)", resp.NewSaved)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCOMPANY\tLOCATION\tFACETS\tSOURCE")
	for _, job := range filtered {
		facets := search.Classify(job)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s/%s\t%s\n",
			job.Title, job.Company, job.Location,
			facets.WorkMode, facets.EmploymentType, facets.ExperienceLevel, job.Source)
	}
	return w.Flush()
}

func parseSearchFilters() (search.Config, error) {
	cfg := search.DefaultConfig()

	var err error
	if cfg.WorkMode, err = search.ParseWorkMode(searchWorkMode); err != nil {
		return cfg, err
	}
	if cfg.EmploymentType, err = search.ParseEmploymentType(searchEmployment); err != nil {
		return cfg, err
	}
	if cfg.ExperienceLevel, err = search.ParseExperienceLevel(searchExperience); err != nil {
		return cfg, err
	}
	if cfg.PostedWithin, err = search.ParsePostedWithin(searchPosted); err != nil {
		return cfg, err
	}
	return cfg, nil
}

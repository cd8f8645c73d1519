package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobdeck/internal/types"
)

// handleDashboard fetches job stats, email stats, and the two recent lists
// concurrently and joins them before rendering. The join is all-or-nothing:
// if any fetch fails the page fails, there is no partial render. All four
// requests share the request context, so closing the tab tears them down.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var (
		jobStats   *types.JobStats
		emailStats *types.EmailStats
		jobs       []types.Job
		emails     []types.Email
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		jobStats, err = s.api.JobStats(ctx)
		return err
	})
	g.Go(func() (err error) {
		emailStats, err = s.api.EmailStats(ctx)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = s.api.ListJobs(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		emails, err = s.api.ListEmails(ctx, "", 0)
		return err
	})

	if err := g.Wait(); err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "dashboard.html", s.pageData(r, map[string]any{
		"JobStats":     jobStats,
		"EmailStats":   emailStats,
		"RecentJobs":   firstN(jobs, 5),
		"RecentEmails": firstN(emails, 5),
	}))
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

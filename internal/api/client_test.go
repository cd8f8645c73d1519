package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdeck/internal/types"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_jobs": 0, "new": 0, "applied": 0, "interview": 0, "rejected": 0, "offer": 0}`))
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(staticToken("tok-123")))
	_, err := client.JobStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"access_token": "t", "token_type": "bearer"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_PropagatesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Job not found in any source"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetJob(context.Background(), 42)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Job not found in any source", apiErr.Detail)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Me(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Detail)
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Me(context.Background())
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL)
	_, err := client.Me(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListJobs_StatusFilterQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL)
	jobs, err := client.ListJobs(context.Background(), types.JobStatusApplied)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Equal(t, "status_filter=applied", gotQuery)

	_, err = client.ListJobs(context.Background(), "nonsense")
	assert.Error(t, err)
}

func TestUpdateJobStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/jobs/7/status", r.URL.Path)
		assert.Equal(t, "interview", r.URL.Query().Get("new_status"))
		_, _ = w.Write([]byte(`{"id": 7, "title": "Backend Engineer", "company_name": "Acme", "status": "interview", "source": "manual", "required_skills": [], "match_score": null, "created_at": "2025-06-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	job, err := client.UpdateJobStatus(context.Background(), 7, types.JobStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, types.JobStatusInterview, job.Status)

	_, err = client.UpdateJobStatus(context.Background(), 7, "unknown")
	assert.Error(t, err)
}

func TestSearchFreeSources_DefaultsLimitPerSource(t *testing.T) {
	var got types.FreeSourceSearchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message": "ok", "sources_searched": ["remotive"], "total_found": 0, "new_saved": 0, "jobs": []}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.SearchFreeSources(context.Background(), &types.FreeSourceSearchRequest{
		Keywords: "go developer",
		Sources:  []string{"remotive"},
		SaveToDB: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, got.LimitPerSource)
	assert.True(t, got.SaveToDB)
	assert.Equal(t, 0, resp.TotalFound)
	assert.Empty(t, resp.Jobs)
}

func TestClient_StrictValidation(t *testing.T) {
	// Backend returns a job with an out-of-enum status; strict mode rejects
	// it before decoding, default mode lets it through.
	body := `{"id": 1, "title": "X", "company_name": "Acme", "status": "archived", "source": "manual", "created_at": "2025-06-01T00:00:00Z"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	strict := New(server.URL, WithStrictValidation())
	_, err := strict.GetJob(context.Background(), 1)
	assert.Error(t, err)

	relaxed := New(server.URL)
	job, err := relaxed.GetJob(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, types.JobStatus("archived"), job.Status)
}

func TestCreateEmail_ValidatesBeforeSending(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.CreateEmail(context.Background(), &types.CreateEmailRequest{
		ToEmail: "not-an-email",
		Subject: "Hi",
		Body:    "Hello",
	})
	assert.Error(t, err)
	assert.False(t, called, "invalid request must not reach the backend")
}

func TestBatchSendEmails(t *testing.T) {
	var got types.BatchSendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails/batch-send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message": "queued"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	require.NoError(t, client.BatchSendEmails(context.Background(), []int64{1, 2, 3}, 30))
	assert.Equal(t, []int64{1, 2, 3}, got.EmailIDs)
	assert.Equal(t, 30, got.DelaySeconds)

	assert.Error(t, client.BatchSendEmails(context.Background(), nil, 30))
}

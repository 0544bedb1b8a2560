package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

func TestTimeEntriesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/time_entries.json", r.URL.Path)
		assert.Equal(t, "issue_id=42&user_id=me&limit=25", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"time_entries": [
				{"id": 7, "hours": 1.5, "spent_on": "2026-08-24", "activity": {"id": 9, "name": "Development"}}
			],
			"total_count": 1, "offset": 0, "limit": 25
		}`))
	}))
	defer server.Close()

	timeEntries := NewTimeEntriesClient(newTestHTTPClient(server))

	page, err := timeEntries.List(context.Background(), &redmine.TimeEntryFilter{
		IssueID: 42,
		UserID:  "me",
	})
	require.NoError(t, err)
	require.Len(t, page.TimeEntries, 1)
	assert.InEpsilon(t, 1.5, page.TimeEntries[0].Hours, 0.0001)
	assert.Equal(t, "Development", page.TimeEntries[0].Activity.Name)
}

func TestTimeEntriesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/time_entries.json", r.URL.Path)

		var body struct {
			TimeEntry map[string]interface{} `json:"time_entry"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, float64(42), body.TimeEntry["issue_id"])
		assert.Equal(t, float64(2.5), body.TimeEntry["hours"])
		assert.Equal(t, "code review", body.TimeEntry["comments"])
		assert.NotContains(t, body.TimeEntry, "project_id")
		assert.NotContains(t, body.TimeEntry, "spent_on")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"time_entry": {"id": 314, "hours": 2.5, "issue": {"id": 42}}}`))
	}))
	defer server.Close()

	timeEntries := NewTimeEntriesClient(newTestHTTPClient(server))

	entry, err := timeEntries.Create(context.Background(), &redmine.TimeEntryCreateRequest{
		IssueID:  42,
		Hours:    2.5,
		Comments: "code review",
	})
	require.NoError(t, err)
	assert.Equal(t, 314, entry.ID)
	require.NotNil(t, entry.Issue)
	assert.Equal(t, 42, entry.Issue.ID)
}

func TestTimeEntriesClient_Create_Validation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	timeEntries := NewTimeEntriesClient(newTestHTTPClient(server))

	tests := []struct {
		name    string
		request *redmine.TimeEntryCreateRequest
	}{
		{name: "nil request", request: nil},
		{name: "neither issue nor project", request: &redmine.TimeEntryCreateRequest{Hours: 2}},
		{name: "zero hours", request: &redmine.TimeEntryCreateRequest{IssueID: 42}},
		{name: "negative hours", request: &redmine.TimeEntryCreateRequest{IssueID: 42, Hours: -1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := timeEntries.Create(context.Background(), tt.request)
			require.Error(t, err)
			assert.True(t, redmine.IsValidation(err))
		})
	}

	// The cross-field check runs before any request is issued.
	assert.Equal(t, int32(0), calls.Load())
}

func TestTimeEntriesClient_Create_ProjectOnly(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TimeEntry map[string]interface{} `json:"time_entry"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, float64(12), body.TimeEntry["project_id"])
		assert.NotContains(t, body.TimeEntry, "issue_id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"time_entry": {"id": 315, "hours": 4}}`))
	}))
	defer server.Close()

	timeEntries := NewTimeEntriesClient(newTestHTTPClient(server))

	_, err := timeEntries.Create(context.Background(), &redmine.TimeEntryCreateRequest{
		ProjectID: 12,
		Hours:     4,
	})
	require.NoError(t, err)
}

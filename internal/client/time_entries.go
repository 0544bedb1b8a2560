package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tracklight-io/redmine-mcp/internal/constants"
	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// TimeEntriesClient implements the time-entry operations.
type TimeEntriesClient struct {
	httpClient *http.Client
}

// NewTimeEntriesClient creates a new time-entries client.
func NewTimeEntriesClient(httpClient *http.Client) *TimeEntriesClient {
	return &TimeEntriesClient{httpClient: httpClient}
}

type timeEntryEnvelope struct {
	TimeEntry redmine.TimeEntry `json:"time_entry"`
}

// List returns one page of time entries matching the filter. Absent filter
// fields are not sent at all.
func (c *TimeEntriesClient) List(ctx context.Context, filter *redmine.TimeEntryFilter) (*redmine.TimeEntriesPage, error) {
	query := filter.Values()
	if !query.Has("limit") {
		query.SetInt("limit", constants.DefaultListLimit)
	}

	resp, err := c.httpClient.Get(ctx, "/time_entries.json", query)
	if err != nil {
		return nil, err
	}

	var page redmine.TimeEntriesPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing time entries list response: %w", err)
	}

	return &page, nil
}

// Create logs time against an issue or a project. The required cross-field
// combination (issue_id or project_id) and a positive hour count are checked
// before any request is issued.
func (c *TimeEntriesClient) Create(ctx context.Context, request *redmine.TimeEntryCreateRequest) (*redmine.TimeEntry, error) {
	if request == nil || (request.IssueID <= 0 && request.ProjectID <= 0) {
		return nil, redmine.NewValidationError("either issue_id or project_id is required to log time")
	}

	if request.Hours <= 0 {
		return nil, redmine.NewValidationError("hours must be positive, got %g", request.Hours)
	}

	resp, err := c.httpClient.Post(ctx, "/time_entries.json", map[string]interface{}{"time_entry": request})
	if err != nil {
		return nil, err
	}

	var envelope timeEntryEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing created time entry response: %w", err)
	}

	return &envelope.TimeEntry, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// EnumerationsClient reads the reference data a caller needs to build issue
// and time-entry requests: trackers, statuses, priorities, activities.
// These endpoints are small and unpaginated.
type EnumerationsClient struct {
	httpClient *http.Client
}

// NewEnumerationsClient creates a new enumerations client.
func NewEnumerationsClient(httpClient *http.Client) *EnumerationsClient {
	return &EnumerationsClient{httpClient: httpClient}
}

// Trackers returns all trackers.
func (c *EnumerationsClient) Trackers(ctx context.Context) ([]redmine.Tracker, error) {
	resp, err := c.httpClient.Get(ctx, "/trackers.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Trackers []redmine.Tracker `json:"trackers"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing trackers response: %w", err)
	}

	return envelope.Trackers, nil
}

// Statuses returns all issue statuses.
func (c *EnumerationsClient) Statuses(ctx context.Context) ([]redmine.IssueStatus, error) {
	resp, err := c.httpClient.Get(ctx, "/issue_statuses.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		IssueStatuses []redmine.IssueStatus `json:"issue_statuses"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing issue statuses response: %w", err)
	}

	return envelope.IssueStatuses, nil
}

// Priorities returns all issue priorities.
func (c *EnumerationsClient) Priorities(ctx context.Context) ([]redmine.IssuePriority, error) {
	resp, err := c.httpClient.Get(ctx, "/enumerations/issue_priorities.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		IssuePriorities []redmine.IssuePriority `json:"issue_priorities"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing issue priorities response: %w", err)
	}

	return envelope.IssuePriorities, nil
}

// Activities returns all time-entry activities.
func (c *EnumerationsClient) Activities(ctx context.Context) ([]redmine.TimeEntryActivity, error) {
	resp, err := c.httpClient.Get(ctx, "/enumerations/time_entry_activities.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		TimeEntryActivities []redmine.TimeEntryActivity `json:"time_entry_activities"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing time entry activities response: %w", err)
	}

	return envelope.TimeEntryActivities, nil
}

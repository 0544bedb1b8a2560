package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tracklight-io/redmine-mcp/internal/constants"
	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// IssuesClient implements the issue operations.
type IssuesClient struct {
	httpClient *http.Client
}

// NewIssuesClient creates a new issues client.
func NewIssuesClient(httpClient *http.Client) *IssuesClient {
	return &IssuesClient{httpClient: httpClient}
}

type issueEnvelope struct {
	Issue redmine.Issue `json:"issue"`
}

// List returns one page of issues matching the filter. Absent filter fields
// are not sent at all; the subject filter carries Redmine's "~" contains
// operator (see redmine.IssueFilter.Values).
func (c *IssuesClient) List(ctx context.Context, filter *redmine.IssueFilter) (*redmine.IssuesPage, error) {
	query := filter.Values()
	if !query.Has("limit") {
		query.SetInt("limit", constants.DefaultListLimit)
	}

	resp, err := c.httpClient.Get(ctx, "/issues.json", query)
	if err != nil {
		return nil, err
	}

	var page redmine.IssuesPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing issues list response: %w", err)
	}

	return &page, nil
}

// Get returns a single issue by ID, optionally including associated data
// (journals, watchers, relations, children).
func (c *IssuesClient) Get(ctx context.Context, issueID int, include ...string) (*redmine.Issue, error) {
	if issueID <= 0 {
		return nil, redmine.NewValidationError("issue ID must be positive, got %d", issueID)
	}

	var query *redmine.Params
	if len(include) > 0 {
		query = redmine.NewParams().Set("include", strings.Join(include, ","))
	}

	path := fmt.Sprintf("/issues/%d.json", issueID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var envelope issueEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing issue response: %w", err)
	}

	return &envelope.Issue, nil
}

// Create creates an issue. Project and subject are required; tracker, status
// and priority fall back to the stock defaults when omitted. Validation
// failures are reported before any request is issued.
func (c *IssuesClient) Create(ctx context.Context, request *redmine.IssueCreateRequest) (*redmine.Issue, error) {
	if request == nil || request.ProjectID <= 0 {
		return nil, redmine.NewValidationError("project_id is required to create an issue")
	}

	if request.Subject == "" {
		return nil, redmine.NewValidationError("subject is required to create an issue")
	}

	body := *request
	if body.TrackerID == 0 {
		body.TrackerID = constants.DefaultTrackerID
	}

	if body.StatusID == 0 {
		body.StatusID = constants.DefaultStatusID
	}

	if body.PriorityID == 0 {
		body.PriorityID = constants.DefaultPriorityID
	}

	resp, err := c.httpClient.Post(ctx, "/issues.json", map[string]interface{}{"issue": body})
	if err != nil {
		return nil, err
	}

	var envelope issueEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing created issue response: %w", err)
	}

	return &envelope.Issue, nil
}

// Update updates an issue with only the supplied fields. Redmine answers
// with 204 No Content on success.
func (c *IssuesClient) Update(ctx context.Context, issueID int, request *redmine.IssueUpdateRequest) error {
	if issueID <= 0 {
		return redmine.NewValidationError("issue ID must be positive, got %d", issueID)
	}

	if request == nil {
		return redmine.NewValidationError("no fields supplied for issue update")
	}

	path := fmt.Sprintf("/issues/%d.json", issueID)

	_, err := c.httpClient.Put(ctx, path, map[string]interface{}{"issue": request})

	return err
}

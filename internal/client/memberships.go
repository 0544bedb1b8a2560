package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// MembershipsClient implements the project-membership operations.
type MembershipsClient struct {
	httpClient *http.Client
}

// NewMembershipsClient creates a new memberships client.
func NewMembershipsClient(httpClient *http.Client) *MembershipsClient {
	return &MembershipsClient{httpClient: httpClient}
}

type membershipsEnvelope struct {
	Memberships []redmine.Membership `json:"memberships"`
	TotalCount  *int                 `json:"total_count"`
	Offset      int                  `json:"offset"`
	Limit       int                  `json:"limit"`
}

// ListAll aggregates every membership of the given project.
func (c *MembershipsClient) ListAll(ctx context.Context, projectID int) (*redmine.Collection[redmine.Membership], error) {
	if projectID <= 0 {
		return nil, redmine.NewValidationError("project ID must be positive, got %d", projectID)
	}

	path := fmt.Sprintf("/projects/%d/memberships.json", projectID)

	fetch := func(ctx context.Context, offset, limit int) (redmine.Page[redmine.Membership], error) {
		query := redmine.NewParams().SetInt("limit", limit).SetInt("offset", offset)

		resp, err := c.httpClient.Get(ctx, path, query)
		if err != nil {
			return redmine.Page[redmine.Membership]{}, err
		}

		var envelope membershipsEnvelope
		if err := json.Unmarshal(resp.Body, &envelope); err != nil {
			return redmine.Page[redmine.Membership]{}, fmt.Errorf("parsing memberships list response: %w", err)
		}

		page := redmine.Page[redmine.Membership]{Items: envelope.Memberships}
		if envelope.TotalCount != nil {
			page.TotalCount = *envelope.TotalCount
			page.HasTotal = true
		}

		return page, nil
	}

	return redmine.CollectAll(ctx, fetch, redmine.DefaultPageSize, 0)
}

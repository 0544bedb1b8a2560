package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tracklight-io/redmine-mcp/internal/constants"
	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// UsersClient implements the user operations. Listing users requires admin
// privileges on most Redmine installs; Current works for any credential.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

type userEnvelope struct {
	User redmine.User `json:"user"`
}

// List returns one page of users matching the filter.
func (c *UsersClient) List(ctx context.Context, filter *redmine.UserFilter) (*redmine.UsersPage, error) {
	query := filter.Values()
	if !query.Has("limit") {
		query.SetInt("limit", constants.DefaultListLimit)
	}

	resp, err := c.httpClient.Get(ctx, "/users.json", query)
	if err != nil {
		return nil, err
	}

	var page redmine.UsersPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return &page, nil
}

// Current returns the user the API key belongs to.
func (c *UsersClient) Current(ctx context.Context) (*redmine.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/current.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope userEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing current user response: %w", err)
	}

	return &envelope.User, nil
}

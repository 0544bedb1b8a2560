// Package client maps logical issue-tracker operations onto HTTP requests:
// each resource client validates its arguments, builds the request
// parameters, and shapes the raw response into its documented result type.
package client

import (
	"github.com/tracklight-io/redmine-mcp/internal/constants"
	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// Client bundles the per-resource clients over a shared transport client.
type Client struct {
	httpClient *http.Client

	projects     *ProjectsClient
	issues       *IssuesClient
	timeEntries  *TimeEntriesClient
	users        *UsersClient
	memberships  *MembershipsClient
	enumerations *EnumerationsClient
}

// New creates a Redmine API client from the given credential context.
func New(config *redmine.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, redmine.ErrBaseURLRequired
	}

	if config.APIKey == "" {
		return nil, redmine.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, buildHTTPOptions(config)...)

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions translates the credential context into transport options.
func buildHTTPOptions(config *redmine.Config) []http.Option {
	var opts []http.Option

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.issues = NewIssuesClient(c.httpClient)
	c.timeEntries = NewTimeEntriesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.memberships = NewMembershipsClient(c.httpClient)
	c.enumerations = NewEnumerationsClient(c.httpClient)
}

// Projects returns the projects client.
func (c *Client) Projects() *ProjectsClient {
	return c.projects
}

// Issues returns the issues client.
func (c *Client) Issues() *IssuesClient {
	return c.issues
}

// TimeEntries returns the time-entries client.
func (c *Client) TimeEntries() *TimeEntriesClient {
	return c.timeEntries
}

// Users returns the users client.
func (c *Client) Users() *UsersClient {
	return c.users
}

// Memberships returns the project-memberships client.
func (c *Client) Memberships() *MembershipsClient {
	return c.memberships
}

// Enumerations returns the enumerations client.
func (c *Client) Enumerations() *EnumerationsClient {
	return c.enumerations
}

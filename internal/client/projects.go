package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// ProjectsClient implements the project operations.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

type projectsEnvelope struct {
	Projects   []redmine.Project `json:"projects"`
	TotalCount *int              `json:"total_count"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}

func (c *ProjectsClient) fetchPage(ctx context.Context, offset, limit int) (redmine.Page[redmine.Project], error) {
	query := redmine.NewParams().SetInt("limit", limit).SetInt("offset", offset)

	resp, err := c.httpClient.Get(ctx, "/projects.json", query)
	if err != nil {
		return redmine.Page[redmine.Project]{}, err
	}

	var envelope projectsEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return redmine.Page[redmine.Project]{}, fmt.Errorf("parsing projects list response: %w", err)
	}

	page := redmine.Page[redmine.Project]{Items: envelope.Projects}
	if envelope.TotalCount != nil {
		page.TotalCount = *envelope.TotalCount
		page.HasTotal = true
	}

	return page, nil
}

// ListAll aggregates every project visible to the credential, ignoring the
// remote's default page size. The optional name filter is a case-insensitive
// substring match applied after aggregation, against the full collected set;
// filtering a single page would miss matches beyond the page boundary.
func (c *ProjectsClient) ListAll(ctx context.Context, nameFilter string) (*redmine.Collection[redmine.Project], error) {
	collection, err := redmine.CollectAll(ctx, c.fetchPage, redmine.DefaultPageSize, 0)
	if err != nil {
		return nil, err
	}

	if nameFilter == "" {
		return collection, nil
	}

	needle := strings.ToLower(nameFilter)
	filtered := make([]redmine.Project, 0, len(collection.Items))

	for _, project := range collection.Items {
		if strings.Contains(strings.ToLower(project.Name), needle) {
			filtered = append(filtered, project)
		}
	}

	return &redmine.Collection[redmine.Project]{
		Items:          filtered,
		Count:          len(filtered),
		TotalAvailable: collection.TotalAvailable,
	}, nil
}

// NameToID aggregates all projects and projects them into a name-to-ID
// mapping. When two projects share a name, the later one in listing order
// wins; that collision policy is deliberate, not a defect.
func (c *ProjectsClient) NameToID(ctx context.Context) (map[string]int, error) {
	collection, err := c.ListAll(ctx, "")
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]int, collection.Count)
	for _, project := range collection.Items {
		mapping[project.Name] = project.ID
	}

	return mapping, nil
}

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// toolDefinitions is the full registration table. The transport and
// aggregation layers know nothing about this list.
func (s *Server) toolDefinitions() []toolDefinition {
	return []toolDefinition{
		{
			tool: mcp.NewTool("list_projects",
				mcp.WithDescription("List all projects, optionally filtered by a case-insensitive name substring"),
				mcp.WithString("name", mcp.Description("Substring to match against project names")),
			),
			handler: s.handleListProjects,
		},
		{
			tool: mcp.NewTool("project_name_to_id",
				mcp.WithDescription("Map project names to their numeric IDs (on duplicate names the later project wins)"),
			),
			handler: s.handleProjectNameToID,
		},
		{
			tool: mcp.NewTool("list_project_memberships",
				mcp.WithDescription("List all memberships (users, groups, roles) of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			handler: s.handleListMemberships,
		},
		{
			tool: mcp.NewTool("list_issues",
				mcp.WithDescription("List issues matching the given filters"),
				mcp.WithNumber("project_id", mcp.Description("Filter by project ID")),
				mcp.WithNumber("tracker_id", mcp.Description("Filter by tracker ID")),
				mcp.WithString("status_id", mcp.Description("Filter by status: a numeric ID, 'open', 'closed' or '*'")),
				mcp.WithString("assigned_to_id", mcp.Description("Filter by assignee: a numeric ID or 'me'")),
				mcp.WithString("subject", mcp.Description("Only issues whose subject contains this text")),
				mcp.WithString("created_on", mcp.Description("Creation date filter, e.g. '>=2024-01-01'")),
				mcp.WithString("updated_on", mcp.Description("Update date filter, e.g. '>=2024-01-01'")),
				mcp.WithString("sort", mcp.Description("Sort order, e.g. 'updated_on:desc'")),
				mcp.WithNumber("limit", mcp.Description("Number of issues to return (default 25)")),
				mcp.WithNumber("offset", mcp.Description("Offset for pagination")),
			),
			handler: s.handleListIssues,
		},
		{
			tool: mcp.NewTool("get_issue",
				mcp.WithDescription("Get a single issue by ID, including its journals"),
				mcp.WithNumber("issue_id", mcp.Required(), mcp.Description("Issue ID")),
			),
			handler: s.handleGetIssue,
		},
		{
			tool: mcp.NewTool("create_issue",
				mcp.WithDescription("Create a new issue"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithString("subject", mcp.Required(), mcp.Description("Issue subject")),
				mcp.WithString("description", mcp.Description("Issue description")),
				mcp.WithNumber("tracker_id", mcp.Description("Tracker ID (defaults to Bug)")),
				mcp.WithNumber("status_id", mcp.Description("Status ID (defaults to New)")),
				mcp.WithNumber("priority_id", mcp.Description("Priority ID (defaults to Normal)")),
				mcp.WithNumber("assigned_to_id", mcp.Description("Assignee user ID")),
				mcp.WithNumber("parent_issue_id", mcp.Description("Parent issue ID")),
				mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD)")),
				mcp.WithString("due_date", mcp.Description("Due date (YYYY-MM-DD)")),
			),
			handler: s.handleCreateIssue,
		},
		{
			tool: mcp.NewTool("update_issue",
				mcp.WithDescription("Update an existing issue; only supplied fields are changed"),
				mcp.WithNumber("issue_id", mcp.Required(), mcp.Description("Issue ID")),
				mcp.WithString("subject", mcp.Description("New subject")),
				mcp.WithString("description", mcp.Description("New description")),
				mcp.WithNumber("tracker_id", mcp.Description("New tracker ID")),
				mcp.WithNumber("status_id", mcp.Description("New status ID")),
				mcp.WithNumber("priority_id", mcp.Description("New priority ID")),
				mcp.WithNumber("assigned_to_id", mcp.Description("New assignee user ID")),
				mcp.WithString("start_date", mcp.Description("New start date (YYYY-MM-DD)")),
				mcp.WithString("due_date", mcp.Description("New due date (YYYY-MM-DD)")),
				mcp.WithNumber("done_ratio", mcp.Description("Progress percentage (0-100)")),
				mcp.WithString("notes", mcp.Description("Comment to add to the issue journal")),
			),
			handler: s.handleUpdateIssue,
		},
		{
			tool: mcp.NewTool("list_time_entries",
				mcp.WithDescription("List time entries matching the given filters"),
				mcp.WithNumber("project_id", mcp.Description("Filter by project ID")),
				mcp.WithNumber("issue_id", mcp.Description("Filter by issue ID")),
				mcp.WithString("user_id", mcp.Description("Filter by user: a numeric ID or 'me'")),
				mcp.WithString("from", mcp.Description("Earliest spent-on date (YYYY-MM-DD)")),
				mcp.WithString("to", mcp.Description("Latest spent-on date (YYYY-MM-DD)")),
				mcp.WithString("spent_on", mcp.Description("Exact spent-on date (YYYY-MM-DD)")),
				mcp.WithNumber("limit", mcp.Description("Number of entries to return (default 25)")),
				mcp.WithNumber("offset", mcp.Description("Offset for pagination")),
			),
			handler: s.handleListTimeEntries,
		},
		{
			tool: mcp.NewTool("log_time",
				mcp.WithDescription("Log spent time against an issue or a project"),
				mcp.WithNumber("issue_id", mcp.Description("Issue ID (this or project_id is required)")),
				mcp.WithNumber("project_id", mcp.Description("Project ID (this or issue_id is required)")),
				mcp.WithNumber("hours", mcp.Required(), mcp.Description("Hours spent")),
				mcp.WithNumber("activity_id", mcp.Description("Time-entry activity ID")),
				mcp.WithString("spent_on", mcp.Description("Date the time was spent (YYYY-MM-DD, defaults to today)")),
				mcp.WithString("comments", mcp.Description("Comments")),
			),
			handler: s.handleLogTime,
		},
		{
			tool: mcp.NewTool("list_users",
				mcp.WithDescription("List users (requires admin privileges)"),
				mcp.WithString("name", mcp.Description("Match against login, name or mail")),
				mcp.WithNumber("status", mcp.Description("Filter by status (1=active, 2=registered, 3=locked)")),
				mcp.WithNumber("group_id", mcp.Description("Filter by group ID")),
				mcp.WithNumber("limit", mcp.Description("Number of users to return (default 25)")),
				mcp.WithNumber("offset", mcp.Description("Offset for pagination")),
			),
			handler: s.handleListUsers,
		},
		{
			tool: mcp.NewTool("current_user",
				mcp.WithDescription("Get the user the configured API key belongs to"),
			),
			handler: s.handleCurrentUser,
		},
		{
			tool: mcp.NewTool("list_trackers",
				mcp.WithDescription("List all trackers"),
			),
			handler: s.handleListTrackers,
		},
		{
			tool: mcp.NewTool("list_statuses",
				mcp.WithDescription("List all issue statuses"),
			),
			handler: s.handleListStatuses,
		},
		{
			tool: mcp.NewTool("list_priorities",
				mcp.WithDescription("List all issue priorities"),
			),
			handler: s.handleListPriorities,
		},
		{
			tool: mcp.NewTool("list_activities",
				mcp.WithDescription("List all time-entry activities"),
			),
			handler: s.handleListActivities,
		},
	}
}

func (s *Server) handleListProjects(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	collection, err := s.client.Projects().ListAll(ctx, req.GetString("name", ""))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"projects":        collection.Items,
		"count":           collection.Count,
		"total_available": collection.TotalAvailable,
	}, nil
}

func (s *Server) handleProjectNameToID(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	mapping, err := s.client.Projects().NameToID(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"projects": mapping,
		"count":    len(mapping),
	}, nil
}

func (s *Server) handleListMemberships(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	projectID, err := req.RequireFloat("project_id")
	if err != nil {
		return nil, err
	}

	collection, err := s.client.Memberships().ListAll(ctx, int(projectID))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"memberships":     collection.Items,
		"count":           collection.Count,
		"total_available": collection.TotalAvailable,
	}, nil
}

func (s *Server) handleListIssues(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	filter := &redmine.IssueFilter{
		ProjectID:    req.GetInt("project_id", 0),
		TrackerID:    req.GetInt("tracker_id", 0),
		StatusID:     req.GetString("status_id", ""),
		AssignedToID: req.GetString("assigned_to_id", ""),
		Subject:      req.GetString("subject", ""),
		CreatedOn:    req.GetString("created_on", ""),
		UpdatedOn:    req.GetString("updated_on", ""),
		Sort:         req.GetString("sort", ""),
		Limit:        req.GetInt("limit", 0),
		Offset:       req.GetInt("offset", 0),
	}

	return s.client.Issues().List(ctx, filter)
}

func (s *Server) handleGetIssue(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	issueID, err := req.RequireFloat("issue_id")
	if err != nil {
		return nil, err
	}

	return s.client.Issues().Get(ctx, int(issueID), "journals")
}

func (s *Server) handleCreateIssue(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	projectID, err := req.RequireFloat("project_id")
	if err != nil {
		return nil, err
	}

	subject, err := req.RequireString("subject")
	if err != nil {
		return nil, err
	}

	request := &redmine.IssueCreateRequest{
		ProjectID:     int(projectID),
		Subject:       subject,
		Description:   req.GetString("description", ""),
		TrackerID:     req.GetInt("tracker_id", 0),
		StatusID:      req.GetInt("status_id", 0),
		PriorityID:    req.GetInt("priority_id", 0),
		AssignedToID:  req.GetInt("assigned_to_id", 0),
		ParentIssueID: req.GetInt("parent_issue_id", 0),
		StartDate:     req.GetString("start_date", ""),
		DueDate:       req.GetString("due_date", ""),
	}

	return s.client.Issues().Create(ctx, request)
}

func (s *Server) handleUpdateIssue(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	issueID, err := req.RequireFloat("issue_id")
	if err != nil {
		return nil, err
	}

	request := &redmine.IssueUpdateRequest{
		Subject:      req.GetString("subject", ""),
		Description:  req.GetString("description", ""),
		TrackerID:    req.GetInt("tracker_id", 0),
		StatusID:     req.GetInt("status_id", 0),
		PriorityID:   req.GetInt("priority_id", 0),
		AssignedToID: req.GetInt("assigned_to_id", 0),
		StartDate:    req.GetString("start_date", ""),
		DueDate:      req.GetString("due_date", ""),
		Notes:        req.GetString("notes", ""),
	}

	// done_ratio distinguishes "unset" from an explicit zero.
	if args := req.GetArguments(); args != nil {
		if v, ok := args["done_ratio"]; ok {
			if f, ok := v.(float64); ok {
				ratio := int(f)
				request.DoneRatio = &ratio
			}
		}
	}

	if err := s.client.Issues().Update(ctx, int(issueID), request); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success":  true,
		"issue_id": int(issueID),
	}, nil
}

func (s *Server) handleListTimeEntries(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	filter := &redmine.TimeEntryFilter{
		ProjectID: req.GetInt("project_id", 0),
		IssueID:   req.GetInt("issue_id", 0),
		UserID:    req.GetString("user_id", ""),
		From:      req.GetString("from", ""),
		To:        req.GetString("to", ""),
		SpentOn:   req.GetString("spent_on", ""),
		Limit:     req.GetInt("limit", 0),
		Offset:    req.GetInt("offset", 0),
	}

	return s.client.TimeEntries().List(ctx, filter)
}

func (s *Server) handleLogTime(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	hours, err := req.RequireFloat("hours")
	if err != nil {
		return nil, err
	}

	request := &redmine.TimeEntryCreateRequest{
		IssueID:    req.GetInt("issue_id", 0),
		ProjectID:  req.GetInt("project_id", 0),
		Hours:      hours,
		ActivityID: req.GetInt("activity_id", 0),
		SpentOn:    req.GetString("spent_on", ""),
		Comments:   req.GetString("comments", ""),
	}

	return s.client.TimeEntries().Create(ctx, request)
}

func (s *Server) handleListUsers(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	filter := &redmine.UserFilter{
		Name:    req.GetString("name", ""),
		Status:  req.GetInt("status", 0),
		GroupID: req.GetInt("group_id", 0),
		Limit:   req.GetInt("limit", 0),
		Offset:  req.GetInt("offset", 0),
	}

	return s.client.Users().List(ctx, filter)
}

func (s *Server) handleCurrentUser(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	return s.client.Users().Current(ctx)
}

func (s *Server) handleListTrackers(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	trackers, err := s.client.Enumerations().Trackers(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"trackers": trackers, "count": len(trackers)}, nil
}

func (s *Server) handleListStatuses(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	statuses, err := s.client.Enumerations().Statuses(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"issue_statuses": statuses, "count": len(statuses)}, nil
}

func (s *Server) handleListPriorities(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	priorities, err := s.client.Enumerations().Priorities(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"issue_priorities": priorities, "count": len(priorities)}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req mcp.CallToolRequest) (interface{}, error) {
	activities, err := s.client.Enumerations().Activities(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"time_entry_activities": activities, "count": len(activities)}, nil
}

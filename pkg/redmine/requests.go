package redmine

// IssueFilter holds the optional filters for an issue listing. Zero-valued
// fields are omitted from the request entirely.
type IssueFilter struct {
	ProjectID    int
	TrackerID    int
	StatusID     string // numeric ID or "open", "closed", "*"
	AssignedToID string // numeric ID or "me"
	// Subject is a contains-match; it is sent with Redmine's leading "~"
	// operator.
	Subject   string
	CreatedOn string // Redmine filter expression, e.g. ">=2024-01-01"
	UpdatedOn string
	Sort      string
	Limit     int
	Offset    int
}

// Values renders the filter as query parameters, copying only present fields.
func (f *IssueFilter) Values() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	if f.ProjectID > 0 {
		params.SetInt("project_id", f.ProjectID)
	}

	if f.TrackerID > 0 {
		params.SetInt("tracker_id", f.TrackerID)
	}

	if f.StatusID != "" {
		params.Set("status_id", f.StatusID)
	}

	if f.AssignedToID != "" {
		params.Set("assigned_to_id", f.AssignedToID)
	}

	if f.Subject != "" {
		// "~" is Redmine's documented contains operator.
		params.Set("subject", "~"+f.Subject)
	}

	if f.CreatedOn != "" {
		params.Set("created_on", f.CreatedOn)
	}

	if f.UpdatedOn != "" {
		params.Set("updated_on", f.UpdatedOn)
	}

	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}

	if f.Limit > 0 {
		params.SetInt("limit", f.Limit)
	}

	if f.Offset > 0 {
		params.SetInt("offset", f.Offset)
	}

	return params
}

// IssueCreateRequest holds the fields for creating an issue. Optional fields
// left at their zero value are omitted from the request body; TrackerID,
// StatusID and PriorityID fall back to the configured defaults.
type IssueCreateRequest struct {
	ProjectID     int    `json:"project_id"`
	TrackerID     int    `json:"tracker_id,omitempty"`
	StatusID      int    `json:"status_id,omitempty"`
	PriorityID    int    `json:"priority_id,omitempty"`
	Subject       string `json:"subject"`
	Description   string `json:"description,omitempty"`
	AssignedToID  int    `json:"assigned_to_id,omitempty"`
	ParentIssueID int    `json:"parent_issue_id,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	DoneRatio     *int   `json:"done_ratio,omitempty"`
	IsPrivate     *bool  `json:"is_private,omitempty"`
}

// IssueUpdateRequest holds the fields for updating an issue. Only supplied
// fields are sent; there is no defaulting on update.
type IssueUpdateRequest struct {
	Subject      string `json:"subject,omitempty"`
	Description  string `json:"description,omitempty"`
	TrackerID    int    `json:"tracker_id,omitempty"`
	StatusID     int    `json:"status_id,omitempty"`
	PriorityID   int    `json:"priority_id,omitempty"`
	AssignedToID int    `json:"assigned_to_id,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	DoneRatio    *int   `json:"done_ratio,omitempty"`
	Notes        string `json:"notes,omitempty"`
	IsPrivate    *bool  `json:"is_private,omitempty"`
}

// TimeEntryFilter holds the optional filters for a time-entry listing.
type TimeEntryFilter struct {
	ProjectID int
	IssueID   int
	UserID    string // numeric ID or "me"
	From      string // YYYY-MM-DD
	To        string // YYYY-MM-DD
	SpentOn   string // YYYY-MM-DD, exact day
	Limit     int
	Offset    int
}

// Values renders the filter as query parameters, copying only present fields.
func (f *TimeEntryFilter) Values() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	if f.ProjectID > 0 {
		params.SetInt("project_id", f.ProjectID)
	}

	if f.IssueID > 0 {
		params.SetInt("issue_id", f.IssueID)
	}

	if f.UserID != "" {
		params.Set("user_id", f.UserID)
	}

	if f.From != "" {
		params.Set("from", f.From)
	}

	if f.To != "" {
		params.Set("to", f.To)
	}

	if f.SpentOn != "" {
		params.Set("spent_on", f.SpentOn)
	}

	if f.Limit > 0 {
		params.SetInt("limit", f.Limit)
	}

	if f.Offset > 0 {
		params.SetInt("offset", f.Offset)
	}

	return params
}

// TimeEntryCreateRequest holds the fields for logging time. Exactly one of
// IssueID or ProjectID must be supplied.
type TimeEntryCreateRequest struct {
	IssueID    int     `json:"issue_id,omitempty"`
	ProjectID  int     `json:"project_id,omitempty"`
	Hours      float64 `json:"hours"`
	ActivityID int     `json:"activity_id,omitempty"`
	SpentOn    string  `json:"spent_on,omitempty"`
	Comments   string  `json:"comments,omitempty"`
}

// UserFilter holds the optional filters for a user listing.
type UserFilter struct {
	// Name matches against login, firstname, lastname and mail.
	Name    string
	Status  int
	GroupID int
	Limit   int
	Offset  int
}

// Values renders the filter as query parameters, copying only present fields.
func (f *UserFilter) Values() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	if f.Name != "" {
		params.Set("name", f.Name)
	}

	if f.Status > 0 {
		params.SetInt("status", f.Status)
	}

	if f.GroupID > 0 {
		params.SetInt("group_id", f.GroupID)
	}

	if f.Limit > 0 {
		params.SetInt("limit", f.Limit)
	}

	if f.Offset > 0 {
		params.SetInt("offset", f.Offset)
	}

	return params
}

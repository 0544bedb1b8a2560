package redmine

import (
	"time"
)

// Config is the immutable credential context for a Redmine endpoint. It is
// created once at process start and shared read-only by all operations.
type Config struct {
	// BaseURL is the root address of the Redmine instance, without a
	// trailing slash (e.g. "https://redmine.example.com").
	BaseURL string

	// APIKey is sent as the X-Redmine-API-Key header on every request.
	// It is never logged.
	APIKey string

	// Timeout bounds each individual HTTP request. Zero means the default
	// of 30 seconds.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives transport-level log lines when set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax enables transport-level retries when positive. The default
	// is zero: exactly one outbound request per call.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Logger is the logging interface accepted by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// IDName is the {id, name} reference shape Redmine embeds for associated
// records (project, tracker, status, priority, author, ...).
type IDName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Project represents a Redmine project.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Identifier  string    `json:"identifier"`
	Description string    `json:"description,omitempty"`
	Status      int       `json:"status,omitempty"`
	IsPublic    bool      `json:"is_public,omitempty"`
	Parent      *IDName   `json:"parent,omitempty"`
	CreatedOn   time.Time `json:"created_on,omitempty"`
	UpdatedOn   time.Time `json:"updated_on,omitempty"`
}

// Issue represents a Redmine issue.
type Issue struct {
	ID          int       `json:"id"`
	Project     IDName    `json:"project"`
	Tracker     IDName    `json:"tracker"`
	Status      IDName    `json:"status"`
	Priority    IDName    `json:"priority"`
	Author      IDName    `json:"author"`
	AssignedTo  *IDName   `json:"assigned_to,omitempty"`
	Parent      *IssueRef `json:"parent,omitempty"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	DoneRatio   int       `json:"done_ratio,omitempty"`
	IsPrivate   bool      `json:"is_private,omitempty"`
	CreatedOn   time.Time `json:"created_on,omitempty"`
	UpdatedOn   time.Time `json:"updated_on,omitempty"`
	Journals    []Journal `json:"journals,omitempty"`
}

// IssueRef is a bare issue reference (parent/child links).
type IssueRef struct {
	ID int `json:"id"`
}

// Journal is one note/change entry on an issue.
type Journal struct {
	ID        int       `json:"id"`
	User      IDName    `json:"user"`
	Notes     string    `json:"notes,omitempty"`
	CreatedOn time.Time `json:"created_on,omitempty"`
}

// TimeEntry represents a logged unit of work.
type TimeEntry struct {
	ID        int       `json:"id"`
	Project   IDName    `json:"project"`
	Issue     *IssueRef `json:"issue,omitempty"`
	User      IDName    `json:"user"`
	Activity  IDName    `json:"activity"`
	Hours     float64   `json:"hours"`
	Comments  string    `json:"comments,omitempty"`
	SpentOn   string    `json:"spent_on,omitempty"`
	CreatedOn time.Time `json:"created_on,omitempty"`
	UpdatedOn time.Time `json:"updated_on,omitempty"`
}

// User represents a Redmine user account.
type User struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Mail        string    `json:"mail,omitempty"`
	Admin       bool      `json:"admin,omitempty"`
	Status      int       `json:"status,omitempty"`
	CreatedOn   time.Time `json:"created_on,omitempty"`
	LastLoginOn time.Time `json:"last_login_on,omitempty"`
}

// Membership represents a user's or group's membership in a project.
type Membership struct {
	ID      int      `json:"id"`
	Project IDName   `json:"project"`
	User    *IDName  `json:"user,omitempty"`
	Group   *IDName  `json:"group,omitempty"`
	Roles   []IDName `json:"roles"`
}

// Tracker represents an issue tracker (Bug, Feature, ...).
type Tracker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// IssueStatus represents an issue workflow status.
type IssueStatus struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsClosed bool   `json:"is_closed,omitempty"`
}

// IssuePriority represents an issue priority enumeration value.
type IssuePriority struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// TimeEntryActivity represents a time-entry activity enumeration value.
type TimeEntryActivity struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default,omitempty"`
	Active    bool   `json:"active,omitempty"`
}

// IssuesPage is one page of an issue listing, mirroring the wire envelope
// returned by GET /issues.json.
type IssuesPage struct {
	Issues     []Issue `json:"issues"`
	TotalCount int     `json:"total_count"`
	Offset     int     `json:"offset"`
	Limit      int     `json:"limit"`
}

// TimeEntriesPage is one page of a time-entry listing.
type TimeEntriesPage struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	TotalCount  int         `json:"total_count"`
	Offset      int         `json:"offset"`
	Limit       int         `json:"limit"`
}

// UsersPage is one page of a user listing.
type UsersPage struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

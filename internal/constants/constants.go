package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry configuration for the opt-in transport retry mode.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Redmine request headers.
const (
	// APIKeyHeader carries the static credential on every request.
	APIKeyHeader = "X-Redmine-API-Key"

	// DefaultUserAgent identifies this client to the Redmine instance.
	DefaultUserAgent = "redmine-mcp"
)

// Defaults applied when an issue creation omits the corresponding field.
// These are the stock IDs of a default Redmine install: tracker "Bug",
// status "New", priority "Normal".
const (
	DefaultTrackerID  = 1
	DefaultStatusID   = 1
	DefaultPriorityID = 2
)

// Listing defaults.
const (
	// DefaultListLimit is the per-page limit for single-page listings
	// when the caller does not specify one.
	DefaultListLimit = 25
)

package redmine_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	validation := redmine.NewValidationError("project ID must be positive, got %d", -1)
	api := &redmine.APIError{StatusCode: 404, Detail: "Not Found"}
	timeout := &redmine.TimeoutError{Timeout: 30 * time.Second}

	tests := []struct {
		name          string
		err           error
		isValidation  bool
		isTimeout     bool
		isTransport   bool
		isNotFound    bool
		isUnauthorized bool
	}{
		{name: "validation", err: validation, isValidation: true},
		{name: "api 404", err: api, isTransport: true, isNotFound: true},
		{name: "api 401", err: &redmine.APIError{StatusCode: 401}, isTransport: true, isUnauthorized: true},
		{name: "timeout", err: timeout, isTimeout: true, isTransport: true},
		{name: "wrapped api", err: fmt.Errorf("listing issues: %w", api), isTransport: true, isNotFound: true},
		{name: "wrapped validation", err: fmt.Errorf("creating issue: %w", validation), isValidation: true},
		{name: "plain", err: fmt.Errorf("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isValidation, redmine.IsValidation(tt.err))
			assert.Equal(t, tt.isTimeout, redmine.IsTimeout(tt.err))
			assert.Equal(t, tt.isTransport, redmine.IsTransport(tt.err))
			assert.Equal(t, tt.isNotFound, redmine.IsNotFound(tt.err))
			assert.Equal(t, tt.isUnauthorized, redmine.IsUnauthorized(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "page size must be positive, got 0",
		redmine.NewValidationError("page size must be positive, got %d", 0).Error())
	assert.Equal(t, "redmine API error 422: Subject cannot be blank",
		(&redmine.APIError{StatusCode: 422, Detail: "Subject cannot be blank"}).Error())
	assert.Equal(t, "request timed out after 30s",
		(&redmine.TimeoutError{Timeout: 30 * time.Second}).Error())
}

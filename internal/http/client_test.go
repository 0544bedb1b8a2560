package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/tracklight-io/redmine-mcp/internal/http"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

func TestClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/issues.json", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "secret-key", r.Header.Get("X-Redmine-API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues": [], "total_count": 0}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "secret-key")

	resp, err := client.Get(context.Background(), "/issues.json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"issues": [], "total_count": 0}`, string(resp.Body))
}

func TestClient_Get_QueryOrderPreserved(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Parameters must appear exactly in the order they were set.
		assert.Equal(t, "status_id=open&subject=~login+bug&limit=25", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	query := redmine.NewParams().
		Set("status_id", "open").
		Set("subject", "~login bug").
		SetInt("limit", 25)

	_, err := client.Get(context.Background(), "/issues.json", query)
	require.NoError(t, err)
}

func TestClient_Post_Body(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"issue": map[string]interface{}{"subject": "crash on login"}}, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"issue": {"id": 42}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	resp, err := client.Post(context.Background(), "/issues.json", map[string]interface{}{
		"issue": map[string]interface{}{"subject": "crash on login"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_Do_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": ["Subject cannot be blank"]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	_, err := client.Post(context.Background(), "/issues.json", map[string]interface{}{})
	require.Error(t, err)

	var apiErr *redmine.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "Subject cannot be blank")
	assert.True(t, redmine.IsTransport(err))
	assert.False(t, redmine.IsValidation(err))
}

func TestClient_Do_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	_, err := client.Get(context.Background(), "/issues/999999.json", nil)
	require.Error(t, err)
	assert.True(t, redmine.IsNotFound(err))
}

func TestClient_Do_Timeout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			time.Sleep(500 * time.Millisecond)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key", internalhttp.WithTimeout(50*time.Millisecond))

	_, err := client.Get(context.Background(), "/projects.json", nil)
	require.Error(t, err)

	var timeoutErr *redmine.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
	assert.True(t, redmine.IsTimeout(err))
	assert.True(t, redmine.IsTransport(err))

	// The timeout is scoped per call: the same client must work again.
	_, err = client.Get(context.Background(), "/projects.json", nil)
	require.NoError(t, err)
}

func TestClient_Do_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/projects.json", nil)
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*redmine.TimeoutError)))
}

func TestClient_Do_NonJSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key")

	resp, err := client.Put(context.Background(), "/issues/42.json", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "{}", string(resp.Body))
}

func TestClient_Do_CustomUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tracklight/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key", internalhttp.WithUserAgent("tracklight/1.0"))

	_, err := client.Get(context.Background(), "/projects.json", nil)
	require.NoError(t, err)
}

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hevy-tools/hevyctl/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{APIKey: "test-key", BaseURL: baseURL}, zap.NewNop())
}

func TestGetForwardsQueryAndAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/workouts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode(map[string]any{"workouts": []any{}, "page": 2, "page_count": 3})
	}))
	defer server.Close()

	query := url.Values{}
	query.Set("page", "2")
	query.Set("page_size", "5")

	data, err := newTestClient(server.URL).Get("/workouts", query)
	require.NoError(t, err)
	assert.JSONEq(t, `{"workouts":[],"page":2,"page_count":3}`, string(data))
}

func TestGetRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Get("/workouts/nope", nil)
	require.Error(t, err)
	assert.Nil(t, data)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	assert.JSONEq(t, `{"error":"not found"}`, string(remoteErr.Body))
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).Get("/user/info", nil)
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestGetInvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Get("/user/info", nil)
	require.Error(t, err)

	var responseErr *ResponseError
	require.True(t, errors.As(err, &responseErr))
	assert.Equal(t, "<html>not json</html>", string(responseErr.Body))
}

func TestPostSendsBodyVerbatim(t *testing.T) {
	raw := `{"workout":{"title":"Leg Day","exercises":[]}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, raw, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"w1","title":"Leg Day"}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Post("/workouts", json.RawMessage(raw))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w1","title":"Leg Day"}`, string(data))
}

func TestPutMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/workouts/w1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"w1"}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Put("/workouts/w1", json.RawMessage(`{"workout":{}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w1"}`, string(data))
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "remote error carries status and body",
			err:      &RemoteError{Status: 404, Body: []byte(`{"error":"not found"}`)},
			expected: `hevy API returned 404: {"error":"not found"}`,
		},
		{
			name:     "request body error without hint",
			err:      &RequestBodyError{},
			expected: "invalid JSON body",
		},
		{
			name:     "request body error with hint",
			err:      &RequestBodyError{Hint: "expected an object"},
			expected: "invalid JSON body: expected an object",
		},
		{
			name:     "response error",
			err:      &ResponseError{Body: []byte("oops")},
			expected: "invalid response body",
		},
		{
			name:     "transport error wraps the cause",
			err:      &TransportError{Err: errors.New("connection refused")},
			expected: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

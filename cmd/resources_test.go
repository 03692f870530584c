package cmd

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryForwardsDateRange(t *testing.T) {
	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercise_history/D04AC939", r.URL.Path)
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-12-31T23:59:59Z", r.URL.Query().Get("end_date"))
		_, _ = w.Write([]byte(`{"exercise_history":[]}`))
	})

	out, err := runCommand(t, "history", "get", "D04AC939",
		"--start", "2024-01-01T00:00:00Z",
		"--end", "2024-12-31T23:59:59Z", "--api-key", "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"exercise_history":[]}`, out)
}

func TestExercisesList(t *testing.T) {
	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercise_templates", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"page":1,"page_count":1,"exercise_templates":[]}`))
	})

	out, err := runCommand(t, "exercises", "list", "--page", "1", "--page-size", "100", "--api-key", "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":1,"page_count":1,"exercise_templates":[]}`, out)
}

func TestExercisesGet(t *testing.T) {
	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercise_templates/D04AC939", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"D04AC939","title":"Bench Press"}`))
	})

	out, err := runCommand(t, "exercises", "get", "D04AC939", "--api-key", "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"D04AC939","title":"Bench Press"}`, out)
}

func TestFoldersCreate(t *testing.T) {
	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/routine_folders", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"index":0,"title":"My Folder"}`))
	})

	out, err := runCommand(t, "folders", "create",
		"--json", `{"routine_folder":{"title":"My Folder"}}`, "--api-key", "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"index":0,"title":"My Folder"}`, out)
}

func TestRoutinesGet(t *testing.T) {
	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routines/r1", r.URL.Path)
		_, _ = w.Write([]byte(`{"routine":{"id":"r1","title":"Push Day","exercises":[]}}`))
	})

	out, err := runCommand(t, "routines", "get", "r1", "--api-key", "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"routine":{"id":"r1","title":"Push Day","exercises":[]}}`, out)
}

package cmd

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hevy-tools/hevyctl/internal/config"
)

func TestConfigSetKeyThenUse(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	out, err := runCommand(t, "config", "set-key", "persisted-key")
	require.NoError(t, err)
	assert.Empty(t, out) // confirmation goes to stderr, not stdout

	mockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/info", r.URL.Path)
		assert.Equal(t, "persisted-key", r.Header.Get("api-key"))
		_, _ = w.Write([]byte(`{"data":{"id":"u1","name":"Test","url":null}}`))
	})

	out, err = runCommand(t, "user", "info")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"u1","name":"Test","url":null}}`, out)
}

func TestConfigSetKeyNeedsNoCredential(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	_, err := runCommand(t, "config", "set-key", "abc")
	assert.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "config.json"))
}

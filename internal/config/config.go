// Package config resolves the Hevy API credential and manages the
// persisted config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the Hevy API root all requests go to.
const DefaultBaseURL = "https://api.hevyapp.com/v1"

// EnvAPIKey is the environment variable consulted when --api-key is not
// given.
const EnvAPIKey = "HEVY_API_KEY"

// envBaseURL overrides the API root. Unadvertised; tests point it at
// local mock servers.
const envBaseURL = "HEVY_BASE_URL"

// FlagAPIKey is set by the root command's --api-key flag.
var FlagAPIKey string

// ErrNoAPIKey means no credential was found in any source.
var ErrNoAPIKey = errors.New(`no API key configured. Supply one via:
  1. --api-key <KEY>
  2. HEVY_API_KEY environment variable
  3. hevyctl config set-key <KEY> (persists it to disk)`)

// WriteError reports a failure persisting the config file.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "saving config: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// Config holds the resolved settings for one invocation.
type Config struct {
	APIKey  string
	BaseURL string
}

// Resolve returns the effective configuration. The API key comes from
// exactly one source, checked in order: the --api-key flag, the
// HEVY_API_KEY environment variable, then the persisted config file.
// Sources are never merged.
func Resolve() (*Config, error) {
	cfg := &Config{BaseURL: DefaultBaseURL}
	if u := os.Getenv(envBaseURL); u != "" {
		cfg.BaseURL = strings.TrimSuffix(u, "/")
	}

	switch {
	case FlagAPIKey != "":
		cfg.APIKey = FlagAPIKey
	case os.Getenv(EnvAPIKey) != "":
		cfg.APIKey = os.Getenv(EnvAPIKey)
	default:
		key, err := readStoredKey()
		if err != nil || key == "" {
			return nil, ErrNoAPIKey
		}
		cfg.APIKey = key
	}

	return cfg, nil
}

// Path returns the location of the config file, normally
// <user config dir>/hevyctl/config.json.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hevyctl", "config.json")
}

func readStoredKey() (string, error) {
	v := viper.New()
	v.SetConfigFile(Path())
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", err
	}
	return v.GetString("api_key"), nil
}

// SetKey persists the API key, creating the config directory as needed
// and overwriting any existing file.
func SetKey(key string) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return &WriteError{Err: fmt.Errorf("creating config directory: %w", err)}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.Set("api_key", key)
	if err := v.WriteConfig(); err != nil {
		return &WriteError{Err: err}
	}

	// The file holds a secret.
	if err := os.Chmod(path, 0600); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

package cmd

import (
	"errors"

	"github.com/hevy-tools/hevyctl/api"
	"github.com/hevy-tools/hevyctl/internal/config"
)

// Exit codes, documented in the root help.
const (
	exitOK        = 0
	exitInternal  = 1
	exitUsage     = 2
	exitConfig    = 3
	exitBody      = 4
	exitTransport = 5
	exitRemote    = 6
	exitResponse  = 7
)

// exitCode maps an error to its process exit code. Anything untyped
// reaching here came out of argument parsing and counts as usage.
func exitCode(err error) int {
	var (
		writeErr     *config.WriteError
		bodyErr      *api.RequestBodyError
		transportErr *api.TransportError
		remoteErr    *api.RemoteError
		responseErr  *api.ResponseError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrNoAPIKey), errors.As(err, &writeErr):
		return exitConfig
	case errors.As(err, &bodyErr):
		return exitBody
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &remoteErr):
		return exitRemote
	case errors.As(err, &responseErr):
		return exitResponse
	default:
		return exitUsage
	}
}

// Package cmd provides the hevyctl command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hevy-tools/hevyctl/api"
	"github.com/hevy-tools/hevyctl/internal/config"
	"github.com/hevy-tools/hevyctl/internal/logging"
)

var (
	flagVerbose bool

	// log is rebuilt by PersistentPreRun once flags are parsed.
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hevyctl",
	Short: "CLI client for the Hevy workout tracking API",
	Long: `hevyctl is a command-line client for the Hevy workout tracking API
(https://api.hevyapp.com/docs). List workouts, create routines, browse
exercise templates and more, straight from your terminal.

Authentication:
  All API commands require a Hevy API key (Hevy Pro).
  Get yours at: https://hevy.com/settings?developer

  The key is resolved in this order:
    1. --api-key <KEY>
    2. HEVY_API_KEY environment variable
    3. Persisted config via 'hevyctl config set-key <KEY>'

Output:
  Data commands print the API's JSON response to stdout for easy piping
  into jq or scripts. Status and error text goes to stderr only.

Pagination:
  List commands take --page and --page-size. Check the returned
  page_count to know when to stop; hevyctl never loops for you.

Exit codes:
  0  success
  1  internal error
  2  usage error
  3  missing or unwritable configuration
  4  invalid --json request body
  5  network failure
  6  API error response
  7  invalid API response body`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(flagVerbose)
	},
}

// Execute runs the root command and exits with a code describing the
// outcome (see the exit code table in --help).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.FlagAPIKey, "api-key", "",
		"Hevy API key (overrides HEVY_API_KEY and stored config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false,
		"Log request details to stderr")
}

// newClient resolves the credential and builds an API client. Called by
// every command except config; failures here never touch the network.
func newClient() (*api.Client, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg, log), nil
}

package cmd

import (
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Retrieve authenticated user information",
}

var userInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get the authenticated user's profile",
	Long: `Returns the user ID, display name, and public profile URL for the
account that owns the API key.

Example:
  hevyctl user info`,
	Args: cobra.NoArgs,
	RunE: runUserInfo,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userInfoCmd)
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/user/info", nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

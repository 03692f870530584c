package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hevy-tools/hevyctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage API key configuration",
	Long: `Persist your API key to disk so you don't have to pass it every time.

The key is stored as JSON ({"api_key": "..."}) in a per-user config
directory; 'hevyctl config path' prints the exact location.`,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <KEY>",
	Short: "Save your API key to the config file",
	Long: `Write the API key to the config file, overwriting any previous key.

This is the only command that needs no credential itself.

Example:
  hevyctl config set-key abc123-def456-...`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetKey,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(stdout, config.Path())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if err := config.SetKey(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "API key saved to %s\n", config.Path())
	return nil
}

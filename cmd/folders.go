package cmd

import (
	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List, view and create routine folders",
	Long: `Routine folders organize your routines. New folders are created at
index 0, shifting existing folder indexes up by one.`,
}

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routine folders (paginated)",
	Long: `Returns page, page_count and routine_folders[]. Each folder has id,
index, title, updated_at and created_at.

Example:
  hevyctl folders list`,
	Args: cobra.NoArgs,
	RunE: runFoldersList,
}

var foldersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single routine folder by ID",
	Long: `Example:
  hevyctl folders get 42`,
	Args: cobra.ExactArgs(1),
	RunE: runFoldersGet,
}

var foldersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new routine folder",
	Long: `The folder is created at index 0; existing folders shift up.

JSON schema:
  {"routine_folder": {"title": "Push Pull"}}

Example:
  hevyctl folders create --json '{"routine_folder":{"title":"My Folder"}}'`,
	Args: cobra.NoArgs,
	RunE: runFoldersCreate,
}

var (
	foldersPage     int
	foldersPageSize int
	foldersJSON     string
)

func init() {
	rootCmd.AddCommand(foldersCmd)
	foldersCmd.AddCommand(foldersListCmd)
	foldersCmd.AddCommand(foldersGetCmd)
	foldersCmd.AddCommand(foldersCreateCmd)

	foldersListCmd.Flags().IntVar(&foldersPage, "page", 1, "Page number (1-based)")
	foldersListCmd.Flags().IntVar(&foldersPageSize, "page-size", 5, "Items per page (max 10)")

	foldersCreateCmd.Flags().StringVar(&foldersJSON, "json", "", "Raw JSON request body")
	_ = foldersCreateCmd.MarkFlagRequired("json")
}

func runFoldersList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/routine_folders", pageQuery(foldersPage, foldersPageSize))
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runFoldersGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/routine_folders/"+args[0], nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runFoldersCreate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("folders create", foldersJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Post("/routine_folders", body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var routinesCmd = &cobra.Command{
	Use:   "routines",
	Short: "List, view, create and update routines",
	Long: `Routines are workout templates. They contain exercises with target
sets, including optional rep ranges.`,
}

var routinesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines (paginated)",
	Long: `Returns page, page_count and routines[]. Each routine includes
exercises with target sets and optional rep_range.

Example:
  hevyctl routines list --page 1 --page-size 5`,
	Args: cobra.NoArgs,
	RunE: runRoutinesList,
}

var routinesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single routine by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoutinesGet,
}

var routinesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new routine",
	Long: `Accepts a raw JSON body describing the routine:

  {
    "routine": {
      "title": "Push Day",
      "folder_id": null,
      "notes": "Focus on form",
      "exercises": [
        {
          "exercise_template_id": "D04AC939",
          "superset_id": null,
          "rest_seconds": 90,
          "notes": "Slow and controlled",
          "sets": [
            {
              "type": "normal",
              "weight_kg": 80,
              "reps": 10,
              "rep_range": {"start": 8, "end": 12}
            }
          ]
        }
      ]
    }
  }

Example:
  hevyctl routines create --json '{"routine":{...}}'`,
	Args: cobra.NoArgs,
	RunE: runRoutinesCreate,
}

var routinesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing routine",
	Long: `Same JSON schema as create but without folder_id:

  {
    "routine": {
      "title": "Updated Push Day",
      "notes": "...",
      "exercises": [...]
    }
  }

Example:
  hevyctl routines update <ID> --json '{"routine":{...}}'`,
	Args: cobra.ExactArgs(1),
	RunE: runRoutinesUpdate,
}

var (
	routinesPage     int
	routinesPageSize int
	routinesJSON     string
)

func init() {
	rootCmd.AddCommand(routinesCmd)
	routinesCmd.AddCommand(routinesListCmd)
	routinesCmd.AddCommand(routinesGetCmd)
	routinesCmd.AddCommand(routinesCreateCmd)
	routinesCmd.AddCommand(routinesUpdateCmd)

	routinesListCmd.Flags().IntVar(&routinesPage, "page", 1, "Page number (1-based)")
	routinesListCmd.Flags().IntVar(&routinesPageSize, "page-size", 5, "Items per page (max 10)")

	routinesCreateCmd.Flags().StringVar(&routinesJSON, "json", "", "Raw JSON request body")
	_ = routinesCreateCmd.MarkFlagRequired("json")

	routinesUpdateCmd.Flags().StringVar(&routinesJSON, "json", "", "Raw JSON request body")
	_ = routinesUpdateCmd.MarkFlagRequired("json")
}

func runRoutinesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/routines", pageQuery(routinesPage, routinesPageSize))
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runRoutinesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/routines/"+args[0], nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runRoutinesCreate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("routines create", routinesJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Post("/routines", body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runRoutinesUpdate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("routines update", routinesJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Put("/routines/"+args[0], body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List, view, create and update workouts",
	Long: `Workouts are the core data type in Hevy. Each workout has a title,
timestamps, and a list of exercises with their sets.

Set types: "normal", "warmup", "failure", "dropset"
Weights are always in kilograms (weight_kg).`,
}

var workoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts (paginated)",
	Long: `Returns a JSON object with page, page_count and workouts[]. Each
workout includes id, title, description, start_time, end_time,
created_at, updated_at, routine_id and exercises[].

Example:
  hevyctl workouts list --page 1 --page-size 5`,
	Args: cobra.NoArgs,
	RunE: runWorkoutsList,
}

var workoutsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single workout by ID",
	Long: `Returns the full workout JSON including all exercises and sets.

Example:
  hevyctl workouts get b459cba5-cd6d-463c-abd6-54f8eafcadcb`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkoutsGet,
}

var workoutsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Get the total number of workouts on the account",
	Long: `Returns JSON: {"workout_count": <number>}

Example:
  hevyctl workouts count`,
	Args: cobra.NoArgs,
	RunE: runWorkoutsCount,
}

var workoutsEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List workout events (updates and deletes) since a date",
	Long: `Useful for syncing a local cache. Events are ordered newest to
oldest. Returns page, page_count and events[], each tagged "updated"
or "deleted".

Example:
  hevyctl workouts events --since 2024-01-01T00:00:00Z`,
	Args: cobra.NoArgs,
	RunE: runWorkoutsEvents,
}

var workoutsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new workout",
	Long: `Accepts a raw JSON body describing the workout:

  {
    "workout": {
      "title": "Leg Day",
      "description": "Optional description",
      "start_time": "2024-08-14T12:00:00Z",
      "end_time": "2024-08-14T12:30:00Z",
      "is_private": false,
      "exercises": [
        {
          "exercise_template_id": "D04AC939",
          "superset_id": null,
          "notes": "Felt good",
          "sets": [
            {"type": "normal", "weight_kg": 100, "reps": 10, "rpe": 8.5}
          ]
        }
      ]
    }
  }

Set types: "normal", "warmup", "failure", "dropset"
RPE values: 6, 7, 7.5, 8, 8.5, 9, 9.5, 10

Example:
  hevyctl workouts create --json '{"workout":{...}}'`,
	Args: cobra.NoArgs,
	RunE: runWorkoutsCreate,
}

var workoutsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing workout",
	Long: `Takes the workout ID and a JSON body with the same schema as create.

Example:
  hevyctl workouts update <ID> --json '{"workout":{...}}'`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkoutsUpdate,
}

var (
	workoutsPage     int
	workoutsPageSize int
	workoutsSince    string
	workoutsJSON     string
)

func init() {
	rootCmd.AddCommand(workoutsCmd)
	workoutsCmd.AddCommand(workoutsListCmd)
	workoutsCmd.AddCommand(workoutsGetCmd)
	workoutsCmd.AddCommand(workoutsCountCmd)
	workoutsCmd.AddCommand(workoutsEventsCmd)
	workoutsCmd.AddCommand(workoutsCreateCmd)
	workoutsCmd.AddCommand(workoutsUpdateCmd)

	workoutsListCmd.Flags().IntVar(&workoutsPage, "page", 1, "Page number (1-based)")
	workoutsListCmd.Flags().IntVar(&workoutsPageSize, "page-size", 5, "Items per page (max 10)")

	workoutsEventsCmd.Flags().IntVar(&workoutsPage, "page", 1, "Page number (1-based)")
	workoutsEventsCmd.Flags().IntVar(&workoutsPageSize, "page-size", 5, "Items per page (max 10)")
	workoutsEventsCmd.Flags().StringVar(&workoutsSince, "since", "", "ISO 8601 date to filter events from (e.g. 2024-01-01T00:00:00Z)")

	workoutsCreateCmd.Flags().StringVar(&workoutsJSON, "json", "", "Raw JSON request body")
	_ = workoutsCreateCmd.MarkFlagRequired("json")

	workoutsUpdateCmd.Flags().StringVar(&workoutsJSON, "json", "", "Raw JSON request body")
	_ = workoutsUpdateCmd.MarkFlagRequired("json")
}

func runWorkoutsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/workouts", pageQuery(workoutsPage, workoutsPageSize))
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runWorkoutsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/workouts/"+args[0], nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runWorkoutsCount(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/workouts/count", nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runWorkoutsEvents(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	query := pageQuery(workoutsPage, workoutsPageSize)
	if workoutsSince != "" {
		query.Set("since", workoutsSince)
	}

	data, err := client.Get("/workouts/events", query)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runWorkoutsCreate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("workouts create", workoutsJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Post("/workouts", body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runWorkoutsUpdate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("workouts update", workoutsJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Put("/workouts/"+args[0], body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List, view and create exercise templates",
	Long: `Exercise templates define the exercises available in your account,
both built-in and custom. You need exercise_template_id values when
creating workouts or routines.

Exercise types: weight_reps, reps_only, bodyweight_reps,
  bodyweight_assisted_reps, duration, weight_duration,
  distance_duration, short_distance_weight

Muscle groups: abdominals, shoulders, biceps, triceps, forearms,
  quadriceps, hamstrings, calves, glutes, abductors, adductors,
  lats, upper_back, traps, lower_back, chest, cardio, neck,
  full_body, other

Equipment: none, barbell, dumbbell, kettlebell, machine, plate,
  resistance_band, suspension, other`,
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise templates (paginated)",
	Long: `Returns page, page_count and exercise_templates[]. Each template has
id, title, type, primary_muscle_group, secondary_muscle_groups and
is_custom.

TIP: use --page-size 100 (the max) to fetch many at once.

Example:
  hevyctl exercises list --page-size 100`,
	Args: cobra.NoArgs,
	RunE: runExercisesList,
}

var exercisesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single exercise template by ID",
	Long: `Example:
  hevyctl exercises get D04AC939`,
	Args: cobra.ExactArgs(1),
	RunE: runExercisesGet,
}

var exercisesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom exercise template",
	Long: `Accepts a raw JSON body describing the exercise:

  {
    "exercise": {
      "title": "My Custom Press",
      "exercise_type": "weight_reps",
      "equipment_category": "barbell",
      "muscle_group": "chest",
      "other_muscles": ["triceps", "shoulders"]
    }
  }

See 'hevyctl exercises --help' for the accepted exercise_type,
equipment_category and muscle_group values.

Example:
  hevyctl exercises create --json '{"exercise":{...}}'`,
	Args: cobra.NoArgs,
	RunE: runExercisesCreate,
}

var (
	exercisesPage     int
	exercisesPageSize int
	exercisesJSON     string
)

func init() {
	rootCmd.AddCommand(exercisesCmd)
	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesGetCmd)
	exercisesCmd.AddCommand(exercisesCreateCmd)

	exercisesListCmd.Flags().IntVar(&exercisesPage, "page", 1, "Page number (1-based)")
	exercisesListCmd.Flags().IntVar(&exercisesPageSize, "page-size", 5, "Items per page (max 100)")

	exercisesCreateCmd.Flags().StringVar(&exercisesJSON, "json", "", "Raw JSON request body")
	_ = exercisesCreateCmd.MarkFlagRequired("json")
}

func runExercisesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/exercise_templates", pageQuery(exercisesPage, exercisesPageSize))
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runExercisesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/exercise_templates/"+args[0], nil)
	if err != nil {
		return err
	}
	return printJSON(data)
}

func runExercisesCreate(cmd *cobra.Command, args []string) error {
	body, err := rawBody("exercises create", exercisesJSON)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Post("/exercise_templates", body)
	if err != nil {
		return err
	}
	return printJSON(data)
}

package cmd

import (
	"net/url"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View exercise history (set-level data across workouts)",
	Long: `Returns every set ever logged for a given exercise template,
including the parent workout context. Useful for tracking progression
over time.`,
}

var historyGetCmd = &cobra.Command{
	Use:   "get <exercise-template-id>",
	Short: "Get set-level history for an exercise template",
	Long: `Returns every set recorded for the given exercise, each with workout
context (workout_id, title, timestamps) and set data (weight_kg, reps,
rpe, distance_meters, duration_seconds, set_type).

Optionally filter by date range (ISO 8601).

Examples:
  hevyctl history get D04AC939
  hevyctl history get D04AC939 --start 2024-01-01T00:00:00Z --end 2024-12-31T23:59:59Z`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryGet,
}

var (
	historyStart string
	historyEnd   string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyGetCmd)

	historyGetCmd.Flags().StringVar(&historyStart, "start", "", "Start date filter (ISO 8601)")
	historyGetCmd.Flags().StringVar(&historyEnd, "end", "", "End date filter (ISO 8601)")
}

func runHistoryGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	query := url.Values{}
	if historyStart != "" {
		query.Set("start_date", historyStart)
	}
	if historyEnd != "" {
		query.Set("end_date", historyEnd)
	}

	data, err := client.Get("/exercise_history/"+args[0], query)
	if err != nil {
		return err
	}
	return printJSON(data)
}

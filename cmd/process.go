package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hevy-tools/hevyctl/api"
)

var processWorkoutCmd = &cobra.Command{
	Use:   "process-workout",
	Short: "Summarize a webhook workout payload as a table",
	Long: `Accepts the JSON payload from a Hevy webhook (e.g. a
workout.completed event), fetches the full workout, and prints a
human-readable table summarizing each exercise and set.

When the workout was logged from a routine, the routine is fetched too
and its target sets drive the result classification:

  Struggled  - reps below the set's target range
  Succeeded  - reps within the target range
  Exceeded   - reps above the target range

Without a routine target, 8-10 reps counts as Succeeded.

Example:
  hevyctl process-workout --json '{"workoutId":"ae4f95df-..."}'`,
	Args: cobra.NoArgs,
	RunE: runProcessWorkout,
}

var processJSON string

func init() {
	rootCmd.AddCommand(processWorkoutCmd)
	processWorkoutCmd.Flags().StringVar(&processJSON, "json", "", `Raw JSON webhook payload containing a "workoutId" field`)
	_ = processWorkoutCmd.MarkFlagRequired("json")
}

const kgToLbs = 2.20462

type webhookPayload struct {
	WorkoutID string `json:"workoutId"`
}

func runProcessWorkout(cmd *cobra.Command, args []string) error {
	var payload webhookPayload
	if err := json.Unmarshal([]byte(processJSON), &payload); err != nil || payload.WorkoutID == "" {
		return &api.RequestBodyError{Hint: `expected {"workoutId":"<UUID>"}`}
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.Get("/workouts/"+payload.WorkoutID, nil)
	if err != nil {
		return err
	}
	var workout api.Workout
	if err := json.Unmarshal(data, &workout); err != nil {
		return &api.ResponseError{Body: data}
	}

	// Best effort: without the routine the default 8-10 target applies.
	var routine *api.Routine
	if workout.RoutineID != nil && *workout.RoutineID != "" {
		if rdata, err := client.Get("/routines/"+*workout.RoutineID, nil); err == nil {
			var resp api.SingleRoutineResponse
			if json.Unmarshal(rdata, &resp) == nil {
				routine = &resp.Routine
			}
		}
	}

	printWorkoutSummary(workout, routine, setTargets(routine))
	return nil
}

type setKey struct {
	templateID string
	index      int
}

type repTarget struct {
	lo, hi int64
}

var defaultTarget = repTarget{lo: 8, hi: 10}

// setTargets maps (exercise template, set index) to the routine's rep
// target: an explicit rep_range wins, else target reps plus or minus
// one.
func setTargets(routine *api.Routine) map[setKey]repTarget {
	targets := make(map[setKey]repTarget)
	if routine == nil {
		return targets
	}

	for _, ex := range routine.Exercises {
		if ex.ExerciseTemplateID == nil {
			continue
		}
		for i, s := range ex.Sets {
			var t repTarget
			if s.RepRange != nil {
				t.lo = 8
				if s.RepRange.Start != nil {
					t.lo = int64(*s.RepRange.Start)
				}
				t.hi = t.lo
				if s.RepRange.End != nil {
					t.hi = int64(*s.RepRange.End)
				}
			} else {
				r := int64(10)
				if s.Reps != nil {
					r = int64(*s.Reps)
				}
				t = repTarget{lo: r - 1, hi: r + 1}
			}
			targets[setKey{*ex.ExerciseTemplateID, i}] = t
		}
	}
	return targets
}

func classifySet(reps, lo, hi int64) string {
	switch {
	case reps < lo:
		return "Struggled"
	case reps <= hi:
		return "Succeeded"
	default:
		return "Exceeded"
	}
}

func printWorkoutSummary(workout api.Workout, routine *api.Routine, targets map[setKey]repTarget) {
	title := strDefault(workout.Title, "Untitled Workout")

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, title)
	fmt.Fprintln(stdout, strings.Repeat("-", len(title)))
	if workout.RoutineID != nil {
		fmt.Fprintf(stdout, "Routine ID: %s\n", *workout.RoutineID)
	}
	fmt.Fprintln(stdout)

	if routine != nil {
		printRoutineTable(routine)
	}
	printResultsTable(workout, targets)
	fmt.Fprintln(stdout)
}

// printRoutineTable shows the routine's targets before the results.
func printRoutineTable(routine *api.Routine) {
	fmt.Fprintf(stdout, "Routine: %s\n\n", strDefault(routine.Title, "Untitled Routine"))

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXERCISE\tSETS\tTARGET WT (LBS)\tTARGET REPS\tREST (S)\tNOTES")

	for _, ex := range routine.Exercises {
		rest := "-"
		if ex.RestSeconds != "" {
			rest = ex.RestSeconds.String()
		}

		// Summary row carries the heaviest target set.
		bestWeight, bestReps := 0.0, "-"
		for _, s := range ex.Sets {
			if s.WeightKg != nil && *s.WeightKg > bestWeight {
				bestWeight = *s.WeightKg
				bestReps = routineRepLabel(s)
			}
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			truncate(strDefault(ex.Title, "Unknown Exercise"), 35),
			len(ex.Sets),
			weightLabel(bestWeight),
			bestReps,
			rest,
			strDefault(ex.Notes, ""))

		for i, s := range ex.Sets {
			weight := 0.0
			if s.WeightKg != nil {
				weight = *s.WeightKg
			}
			fmt.Fprintf(w, "  %s\t\t%s\t%s\t\t\n",
				setLabel(i, s.SetType),
				weightLabel(weight),
				routineRepLabel(s))
		}
	}
	w.Flush()
	fmt.Fprintln(stdout)
}

func printResultsTable(workout api.Workout, targets map[setKey]repTarget) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXERCISE\tSETS\tWEIGHT (LBS)\tREPS\tRESULT\tNOTES")

	for _, ex := range workout.Exercises {
		// Overall result: any struggled set wins, else Exceeded only
		// when every set exceeded its target.
		hasStruggled := false
		allExceeded := true
		for i, s := range ex.Sets {
			reps := int64(0)
			if s.Reps != nil {
				reps = int64(*s.Reps)
			}
			t := exerciseTarget(ex, i, targets)
			switch classifySet(reps, t.lo, t.hi) {
			case "Struggled":
				hasStruggled = true
				allExceeded = false
			case "Succeeded":
				allExceeded = false
			}
		}
		overall := "Succeeded"
		if hasStruggled {
			overall = "Struggled"
		} else if allExceeded && len(ex.Sets) > 0 {
			overall = "Exceeded"
		}

		fmt.Fprintf(w, "%s\t%d\t\t\t%s\t%s\n",
			truncate(strDefault(ex.Title, "Unknown Exercise"), 35),
			len(ex.Sets),
			overall,
			strDefault(ex.Notes, ""))

		for i, s := range ex.Sets {
			weight := 0.0
			if s.WeightKg != nil {
				weight = *s.WeightKg
			}
			reps := int64(0)
			repsLabel := "-"
			if s.Reps != nil {
				reps = int64(*s.Reps)
				repsLabel = fmt.Sprintf("%d", reps)
			}
			t := exerciseTarget(ex, i, targets)

			rpe := ""
			if s.RPE != nil {
				rpe = fmt.Sprintf("RPE %g", *s.RPE)
			}

			fmt.Fprintf(w, "  %s\t\t%s\t%s\t%s\t%s\n",
				setLabel(i, s.SetType),
				weightLabel(weight),
				repsLabel,
				classifySet(reps, t.lo, t.hi),
				rpe)
		}
	}
	w.Flush()
}

func exerciseTarget(ex api.Exercise, index int, targets map[setKey]repTarget) repTarget {
	if ex.ExerciseTemplateID != nil {
		if t, ok := targets[setKey{*ex.ExerciseTemplateID, index}]; ok {
			return t
		}
	}
	return defaultTarget
}

func routineRepLabel(s api.RoutineSet) string {
	if s.RepRange != nil {
		start, end := s.RepRange.Start, s.RepRange.End
		switch {
		case start != nil && end != nil:
			return fmt.Sprintf("%d-%d", int64(*start), int64(*end))
		case start != nil:
			return fmt.Sprintf("%d+", int64(*start))
		}
	}
	if s.Reps != nil {
		return fmt.Sprintf("%d", int64(*s.Reps))
	}
	return "-"
}

func setLabel(index int, setType *string) string {
	label := fmt.Sprintf("Set %d", index+1)
	if setType != nil && *setType != "" {
		label += fmt.Sprintf(" (%s)", *setType)
	}
	return label
}

func weightLabel(kg float64) string {
	if kg <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", kg*kgToLbs)
}

func strDefault(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

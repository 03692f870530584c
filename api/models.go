package api

import "encoding/json"

// Models for the payloads hevyctl decodes locally. Only process-workout
// parses responses; every other command relays the server's JSON
// untouched.

// Workout is a logged workout with its exercises and sets.
type Workout struct {
	ID          *string    `json:"id"`
	Title       *string    `json:"title"`
	RoutineID   *string    `json:"routine_id"`
	Description *string    `json:"description"`
	StartTime   *string    `json:"start_time"`
	EndTime     *string    `json:"end_time"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise is one exercise within a workout.
type Exercise struct {
	Title              *string `json:"title"`
	Notes              *string `json:"notes"`
	ExerciseTemplateID *string `json:"exercise_template_id"`
	Sets               []Set   `json:"sets"`
}

// Set is a single logged set.
type Set struct {
	SetType  *string  `json:"type"`
	WeightKg *float64 `json:"weight_kg"`
	Reps     *float64 `json:"reps"`
	RPE      *float64 `json:"rpe"`
}

// SingleRoutineResponse wraps GET /routines/{id}.
type SingleRoutineResponse struct {
	Routine Routine `json:"routine"`
}

// Routine is a workout template.
type Routine struct {
	ID        *string           `json:"id"`
	Title     *string           `json:"title"`
	Exercises []RoutineExercise `json:"exercises"`
}

// RoutineExercise is one exercise within a routine, with target sets.
type RoutineExercise struct {
	Title              *string      `json:"title"`
	Notes              *string      `json:"notes"`
	RestSeconds        json.Number  `json:"rest_seconds"`
	ExerciseTemplateID *string      `json:"exercise_template_id"`
	Sets               []RoutineSet `json:"sets"`
}

// RoutineSet is a target set, optionally with a rep range.
type RoutineSet struct {
	SetType  *string   `json:"type"`
	WeightKg *float64  `json:"weight_kg"`
	Reps     *float64  `json:"reps"`
	RepRange *RepRange `json:"rep_range"`
}

// RepRange is an inclusive target rep range.
type RepRange struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

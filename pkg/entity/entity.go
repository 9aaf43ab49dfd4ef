package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used everywhere a date is stored.
// Workout and food-log dates carry no time-of-day semantics.
const DateLayout = "2006-01-02"

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Exercise is an immutable catalog entry. It is created by seeding and
// never mutated by the end user.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Level            string   `json:"level"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	Equipment        *string  `json:"equipment"`
	Force            *string  `json:"force"`
	Mechanic         *string  `json:"mechanic"`
	Instructions     []string `json:"instructions"`
	Tips             []string `json:"tips"`
	Aliases          []string `json:"aliases"`
	Description      *string  `json:"description"`
}

// Exercise catalog enums.
const (
	CategoryStrength       = "strength"
	CategoryStretching     = "stretching"
	CategoryPlyometrics    = "plyometrics"
	CategoryStrongman      = "strongman"
	CategoryPowerlifting   = "powerlifting"
	CategoryCardio         = "cardio"
	CategoryOlympicLifting = "olympic-weightlifting"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

// Set belongs to exactly one WorkoutExercise. The personal-record flag is
// asserted by the user, never derived from history.
type Set struct {
	ID               uuid.UUID `json:"id"`
	Reps             int       `json:"reps"`
	Weight           float64   `json:"weight"`
	RPE              *int      `json:"rpe,omitempty"`
	RestTime         *int      `json:"rest_time,omitempty"`
	IsPersonalRecord bool      `json:"is_personal_record"`
}

// WorkoutExercise is an exercise as logged inside one workout. Its name is
// free text and may or may not match a catalog Exercise.
type WorkoutExercise struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscle_groups"`
	Sets         []Set     `json:"sets"`
	Notes        string    `json:"notes,omitempty"`
}

type Workout struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"uid"`
	Name      string            `json:"name"`
	Date      string            `json:"date"`
	Duration  *int              `json:"duration,omitempty"`
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
	Completed bool              `json:"completed"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Food is an immutable catalog entry. Macros are per one reference serving.
type Food struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Serving  string  `json:"serving"`
}

// Meal slots for food log entries.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealSlots lists the fixed slots in display order.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// FoodEntry is a log record. Macro fields are already scaled by Servings at
// creation time and are never recomputed from the catalog afterwards, so
// historical entries stay stable under catalog edits.
type FoodEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	FoodID    string    `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Servings  float64   `json:"servings"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Date      string    `json:"date"`
	Meal      string    `json:"meal"`
	CreatedAt time.Time `json:"created_at"`
}

// NutritionGoals is a per-user singleton of daily targets.
type NutritionGoals struct {
	UserID   uuid.UUID `json:"uid"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

// DefaultNutritionGoals are used until the user's first explicit edit.
func DefaultNutritionGoals(uid uuid.UUID) NutritionGoals {
	return NutritionGoals{
		UserID:   uid,
		Calories: 2000,
		Protein:  150,
		Carbs:    250,
		Fat:      65,
	}
}

// TemplateExercise is an exercise slot in a workout template, without sets.
type TemplateExercise struct {
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscle_groups"`
	Notes        string   `json:"notes,omitempty"`
}

type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Exercises []TemplateExercise `json:"exercises"`
}

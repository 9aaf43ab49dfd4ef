package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type SetInput struct {
	Reps             int     `json:"reps" validate:"min=0"`
	Weight           float64 `json:"weight" validate:"min=0"`
	RPE              *int    `json:"rpe,omitempty" validate:"omitempty,min=1,max=10"`
	RestTime         *int    `json:"rest_time,omitempty" validate:"omitempty,min=0"`
	IsPersonalRecord bool    `json:"is_personal_record"`
}

type WorkoutExerciseInput struct {
	Name         string     `json:"name" validate:"required,max=200"`
	MuscleGroups []string   `json:"muscle_groups"`
	Notes        string     `json:"notes"`
	Sets         []SetInput `json:"sets" validate:"dive"`
}

type CreateWorkoutRequest struct {
	Name      string                 `json:"name" validate:"required,max=200"`
	Date      string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Duration  *int                   `json:"duration,omitempty" validate:"omitempty,min=0"`
	Notes     string                 `json:"notes"`
	Completed bool                   `json:"completed"`
	Exercises []WorkoutExerciseInput `json:"exercises" validate:"dive"`
}

// UpdateWorkoutRequest is a partial update: nil fields keep the stored
// value, a non-nil Exercises replaces the exercise list wholesale.
type UpdateWorkoutRequest struct {
	Name      *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Date      *string                 `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Duration  *int                    `json:"duration,omitempty" validate:"omitempty,min=0"`
	Notes     *string                 `json:"notes,omitempty"`
	Completed *bool                   `json:"completed,omitempty"`
	Exercises *[]WorkoutExerciseInput `json:"exercises,omitempty" validate:"omitempty,dive"`
}

// ProgressReport is the dashboard aggregate over a user's whole history.
type ProgressReport struct {
	Summary         stats.CollectionSummary `json:"summary"`
	ThisWeek        int                     `json:"this_week"`
	ThisMonth       int                     `json:"this_month"`
	PersonalRecords []stats.PersonalRecord  `json:"personal_records"`
}

type WorkoutServiceI interface {
	// Validates and stores a new workout, assigning identities down the tree
	CreateWorkout(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.Workout, error)
	GetWorkout(ctx context.Context, workoutID, userID uuid.UUID) (*entity.Workout, error)
	GetUserWorkouts(ctx context.Context, uid uuid.UUID) ([]entity.Workout, error)
	// Applies a partial update after an ownership check
	UpdateWorkout(ctx context.Context, workoutID, userID uuid.UUID, req *UpdateWorkoutRequest) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID, userID uuid.UUID) error
	// Derives history-wide stats as of now
	GetProgress(ctx context.Context, uid uuid.UUID, now time.Time) (*ProgressReport, error)
	// Stores already-rebuilt imported workouts under uid
	ImportWorkouts(ctx context.Context, uid uuid.UUID, workouts []entity.Workout) (int, error)
}

type CatalogServiceI interface {
	// One filtered, ordered page of the exercise catalog
	ListExercises(ctx context.Context, filter stats.ExerciseFilter, page, pageSize int) (stats.ExercisePage, error)
	// Filter options across the whole catalog
	GetFacets(ctx context.Context) (stats.Facets, error)
	MuscleGroups(ctx context.Context) ([]string, error)
	GetExercise(ctx context.Context, id string) (*entity.Exercise, error)
}

type LogFoodRequest struct {
	FoodID   string  `json:"food_id" validate:"required"`
	Servings float64 `json:"servings" validate:"min=0"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Meal     string  `json:"meal" validate:"required,oneof=breakfast lunch dinner snack"`
}

type GoalsRequest struct {
	Calories float64 `json:"calories" validate:"required,gt=0"`
	Protein  float64 `json:"protein" validate:"required,gt=0"`
	Carbs    float64 `json:"carbs" validate:"required,gt=0"`
	Fat      float64 `json:"fat" validate:"required,gt=0"`
}

// MacroProgress holds capped progress percentages toward the daily goals.
type MacroProgress struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type DailySummary struct {
	Day      stats.DailyNutrition  `json:"day"`
	Meals    []stats.MealNutrition `json:"meals"`
	Goals    entity.NutritionGoals `json:"goals"`
	Progress MacroProgress         `json:"progress"`
}

type NutritionServiceI interface {
	ListFoods(ctx context.Context) ([]entity.Food, error)
	// Scales the food's macros by servings and stores the denormalized entry
	LogFood(ctx context.Context, uid uuid.UUID, req *LogFoodRequest) (*entity.FoodEntry, error)
	DeleteEntry(ctx context.Context, entryID, uid uuid.UUID) error
	// One day's entries, totals, meal breakdown and goal progress
	DailySummary(ctx context.Context, uid uuid.UUID, date string) (*DailySummary, error)
	// Stored goals, or defaults before the first edit
	GetGoals(ctx context.Context, uid uuid.UUID) (entity.NutritionGoals, error)
	UpdateGoals(ctx context.Context, uid uuid.UUID, req *GoalsRequest) error
}

type TemplateServiceI interface {
	ListTemplates() []entity.WorkoutTemplate
	// Copies a template into a new stored workout with empty set lists
	StartFromTemplate(ctx context.Context, uid uuid.UUID, templateID, date string) (*entity.Workout, error)
}

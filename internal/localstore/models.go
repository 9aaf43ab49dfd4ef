package localstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// Row types mirror pkg/entity with SQLite-friendly columns. UUIDs are
// stored as strings, string slices as JSON.

type workoutRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Name      string
	Date      string `gorm:"index"`
	Duration  *int
	Notes     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Exercises []workoutExerciseRow `gorm:"foreignKey:WorkoutID"`
}

func (workoutRow) TableName() string { return "workouts" }

type workoutExerciseRow struct {
	ID           string `gorm:"primaryKey"`
	WorkoutID    string `gorm:"index"`
	Position     int
	Name         string
	MuscleGroups []string `gorm:"serializer:json"`
	Notes        string
	Sets         []setRow `gorm:"foreignKey:ExerciseID"`
}

func (workoutExerciseRow) TableName() string { return "workout_exercises" }

type setRow struct {
	ID               string `gorm:"primaryKey"`
	ExerciseID       string `gorm:"index"`
	Position         int
	Reps             int
	Weight           float64
	RPE              *int
	RestTime         *int
	IsPersonalRecord bool
}

func (setRow) TableName() string { return "sets" }

type exerciseRow struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Category         string
	Level            string
	PrimaryMuscles   []string `gorm:"serializer:json"`
	SecondaryMuscles []string `gorm:"serializer:json"`
	Equipment        *string
	Force            *string
	Mechanic         *string
	Instructions     []string `gorm:"serializer:json"`
	Tips             []string `gorm:"serializer:json"`
	Aliases          []string `gorm:"serializer:json"`
	Description      *string
}

func (exerciseRow) TableName() string { return "exercises" }

type foodRow struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Serving  string
}

func (foodRow) TableName() string { return "foods" }

type foodEntryRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	FoodID    string
	FoodName  string
	Servings  float64
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Date      string `gorm:"index"`
	Meal      string
	CreatedAt time.Time
}

func (foodEntryRow) TableName() string { return "food_entries" }

type goalsRow struct {
	UserID   string `gorm:"primaryKey"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

func (goalsRow) TableName() string { return "nutrition_goals" }

func toWorkoutRow(w *entity.Workout) workoutRow {
	row := workoutRow{
		ID:        w.ID.String(),
		UserID:    w.UserID.String(),
		Name:      w.Name,
		Date:      w.Date,
		Duration:  w.Duration,
		Notes:     w.Notes,
		Completed: w.Completed,
	}
	for pos := range w.Exercises {
		ex := &w.Exercises[pos]
		exRow := workoutExerciseRow{
			ID:           ex.ID.String(),
			WorkoutID:    row.ID,
			Position:     pos,
			Name:         ex.Name,
			MuscleGroups: ex.MuscleGroups,
			Notes:        ex.Notes,
		}
		for spos := range ex.Sets {
			set := &ex.Sets[spos]
			exRow.Sets = append(exRow.Sets, setRow{
				ID:               set.ID.String(),
				ExerciseID:       exRow.ID,
				Position:         spos,
				Reps:             set.Reps,
				Weight:           set.Weight,
				RPE:              set.RPE,
				RestTime:         set.RestTime,
				IsPersonalRecord: set.IsPersonalRecord,
			})
		}
		row.Exercises = append(row.Exercises, exRow)
	}
	return row
}

func fromWorkoutRow(row *workoutRow) entity.Workout {
	w := entity.Workout{
		ID:        parseUUID(row.ID),
		UserID:    parseUUID(row.UserID),
		Name:      row.Name,
		Date:      row.Date,
		Duration:  row.Duration,
		Notes:     row.Notes,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Exercises: make([]entity.WorkoutExercise, 0, len(row.Exercises)),
	}
	for i := range row.Exercises {
		exRow := &row.Exercises[i]
		ex := entity.WorkoutExercise{
			ID:           parseUUID(exRow.ID),
			Name:         exRow.Name,
			MuscleGroups: exRow.MuscleGroups,
			Notes:        exRow.Notes,
			Sets:         make([]entity.Set, 0, len(exRow.Sets)),
		}
		for j := range exRow.Sets {
			s := &exRow.Sets[j]
			ex.Sets = append(ex.Sets, entity.Set{
				ID:               parseUUID(s.ID),
				Reps:             s.Reps,
				Weight:           s.Weight,
				RPE:              s.RPE,
				RestTime:         s.RestTime,
				IsPersonalRecord: s.IsPersonalRecord,
			})
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w
}

func toExerciseRow(ex *entity.Exercise) exerciseRow {
	return exerciseRow{
		ID:               ex.ID,
		Name:             ex.Name,
		Category:         ex.Category,
		Level:            ex.Level,
		PrimaryMuscles:   ex.PrimaryMuscles,
		SecondaryMuscles: ex.SecondaryMuscles,
		Equipment:        ex.Equipment,
		Force:            ex.Force,
		Mechanic:         ex.Mechanic,
		Instructions:     ex.Instructions,
		Tips:             ex.Tips,
		Aliases:          ex.Aliases,
		Description:      ex.Description,
	}
}

func fromExerciseRow(row *exerciseRow) entity.Exercise {
	return entity.Exercise{
		ID:               row.ID,
		Name:             row.Name,
		Category:         row.Category,
		Level:            row.Level,
		PrimaryMuscles:   row.PrimaryMuscles,
		SecondaryMuscles: row.SecondaryMuscles,
		Equipment:        row.Equipment,
		Force:            row.Force,
		Mechanic:         row.Mechanic,
		Instructions:     row.Instructions,
		Tips:             row.Tips,
		Aliases:          row.Aliases,
		Description:      row.Description,
	}
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}
	}
	return id
}

package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// WorkoutsStore implements repository.WorkoutsRepositoryI on SQLite.
type WorkoutsStore struct {
	db *gorm.DB
}

func NewWorkoutsStore(db *gorm.DB) *WorkoutsStore {
	return &WorkoutsStore{db: db}
}

func (ws *WorkoutsStore) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	if workout == nil {
		return uuid.UUID{}, errors.New("workout is nil")
	}
	row := toWorkoutRow(workout)
	if err := ws.db.WithContext(ctx).Create(&row).Error; err != nil {
		return uuid.UUID{}, fmt.Errorf("create workout: %w", err)
	}
	return workout.ID, nil
}

func (ws *WorkoutsStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var row workoutRow
	err := ws.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&row, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	w := fromWorkoutRow(&row)
	return &w, nil
}

func (ws *WorkoutsStore) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Workout, error) {
	var rows []workoutRow
	err := ws.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ?", uid.String()).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	workouts := make([]entity.Workout, 0, len(rows))
	for i := range rows {
		workouts = append(workouts, fromWorkoutRow(&rows[i]))
	}
	return workouts, nil
}

func (ws *WorkoutsStore) Update(ctx context.Context, workout *entity.Workout) error {
	if workout == nil {
		return errors.New("workout is nil")
	}
	row := toWorkoutRow(workout)
	return ws.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&workoutRow{}).Where("id = ?", row.ID).Updates(map[string]any{
			"name":      row.Name,
			"date":      row.Date,
			"duration":  row.Duration,
			"notes":     row.Notes,
			"completed": row.Completed,
		})
		if res.Error != nil {
			return fmt.Errorf("update workout: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errorvalues.ErrWorkoutNotFound
		}
		if err := deleteWorkoutTree(tx, row.ID); err != nil {
			return err
		}
		for i := range row.Exercises {
			if err := tx.Create(&row.Exercises[i]).Error; err != nil {
				return fmt.Errorf("recreate workout exercises: %w", err)
			}
		}
		return nil
	})
}

func (ws *WorkoutsStore) Delete(ctx context.Context, id uuid.UUID) error {
	return ws.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteWorkoutTree(tx, id.String()); err != nil {
			return err
		}
		res := tx.Delete(&workoutRow{}, "id = ?", id.String())
		if res.Error != nil {
			return fmt.Errorf("delete workout: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errorvalues.ErrWorkoutNotFound
		}
		return nil
	})
}

// deleteWorkoutTree removes a workout's exercises and their sets. SQLite
// foreign keys are not enforced by default, so the cascade is done by hand.
func deleteWorkoutTree(tx *gorm.DB, workoutID string) error {
	var exerciseIDs []string
	err := tx.Model(&workoutExerciseRow{}).Where("workout_id = ?", workoutID).Pluck("id", &exerciseIDs).Error
	if err != nil {
		return fmt.Errorf("collect workout exercises: %w", err)
	}
	if len(exerciseIDs) > 0 {
		if err = tx.Delete(&setRow{}, "exercise_id IN ?", exerciseIDs).Error; err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}
	}
	if err = tx.Delete(&workoutExerciseRow{}, "workout_id = ?", workoutID).Error; err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	return nil
}

package localstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// ExercisesStore implements repository.ExercisesRepositoryI on SQLite.
type ExercisesStore struct {
	db *gorm.DB
}

func NewExercisesStore(db *gorm.DB) *ExercisesStore {
	return &ExercisesStore{db: db}
}

func (es *ExercisesStore) List(ctx context.Context) ([]entity.Exercise, error) {
	var rows []exerciseRow
	if err := es.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	exercises := make([]entity.Exercise, 0, len(rows))
	for i := range rows {
		exercises = append(exercises, fromExerciseRow(&rows[i]))
	}
	return exercises, nil
}

func (es *ExercisesStore) Seed(ctx context.Context, exercises []entity.Exercise) error {
	for i := range exercises {
		row := toExerciseRow(&exercises[i])
		err := es.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed exercise %s: %w", row.ID, err)
		}
	}
	return nil
}

// FoodsStore implements repository.FoodsRepositoryI on SQLite.
type FoodsStore struct {
	db *gorm.DB
}

func NewFoodsStore(db *gorm.DB) *FoodsStore {
	return &FoodsStore{db: db}
}

func (fs *FoodsStore) List(ctx context.Context) ([]entity.Food, error) {
	var rows []foodRow
	if err := fs.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	foods := make([]entity.Food, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, entity.Food(row))
	}
	return foods, nil
}

func (fs *FoodsStore) GetByID(ctx context.Context, id string) (*entity.Food, error) {
	var row foodRow
	if err := fs.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	food := entity.Food(row)
	return &food, nil
}

func (fs *FoodsStore) Seed(ctx context.Context, foods []entity.Food) error {
	for _, food := range foods {
		row := foodRow(food)
		err := fs.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("seed food %s: %w", row.ID, err)
		}
	}
	return nil
}

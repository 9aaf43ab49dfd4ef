package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// FoodEntriesStore implements repository.FoodEntriesRepositoryI on SQLite.
type FoodEntriesStore struct {
	db *gorm.DB
}

func NewFoodEntriesStore(db *gorm.DB) *FoodEntriesStore {
	return &FoodEntriesStore{db: db}
}

func (fes *FoodEntriesStore) Create(ctx context.Context, entry *entity.FoodEntry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	row := foodEntryRow{
		ID:       entry.ID.String(),
		UserID:   entry.UserID.String(),
		FoodID:   entry.FoodID,
		FoodName: entry.FoodName,
		Servings: entry.Servings,
		Calories: entry.Calories,
		Protein:  entry.Protein,
		Carbs:    entry.Carbs,
		Fat:      entry.Fat,
		Date:     entry.Date,
		Meal:     entry.Meal,
	}
	if err := fes.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create food entry: %w", err)
	}
	return nil
}

func (fes *FoodEntriesStore) Delete(ctx context.Context, id, uid uuid.UUID) error {
	res := fes.db.WithContext(ctx).Delete(&foodEntryRow{}, "id = ? AND user_id = ?", id.String(), uid.String())
	if res.Error != nil {
		return fmt.Errorf("delete food entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (fes *FoodEntriesStore) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.FoodEntry, error) {
	var rows []foodEntryRow
	err := fes.db.WithContext(ctx).Where("user_id = ?", uid.String()).
		Order("date DESC, created_at").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	return fromEntryRows(rows), nil
}

func (fes *FoodEntriesStore) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.FoodEntry, error) {
	var rows []foodEntryRow
	err := fes.db.WithContext(ctx).Where("user_id = ? AND date = ?", uid.String(), date).
		Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list food entries by date: %w", err)
	}
	return fromEntryRows(rows), nil
}

func fromEntryRows(rows []foodEntryRow) []entity.FoodEntry {
	entries := make([]entity.FoodEntry, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		entries = append(entries, entity.FoodEntry{
			ID:        parseUUID(row.ID),
			UserID:    parseUUID(row.UserID),
			FoodID:    row.FoodID,
			FoodName:  row.FoodName,
			Servings:  row.Servings,
			Calories:  row.Calories,
			Protein:   row.Protein,
			Carbs:     row.Carbs,
			Fat:       row.Fat,
			Date:      row.Date,
			Meal:      row.Meal,
			CreatedAt: row.CreatedAt,
		})
	}
	return entries
}

// GoalsStore implements repository.GoalsRepositoryI on SQLite.
type GoalsStore struct {
	db *gorm.DB
}

func NewGoalsStore(db *gorm.DB) *GoalsStore {
	return &GoalsStore{db: db}
}

func (gs *GoalsStore) Get(ctx context.Context, uid uuid.UUID) (*entity.NutritionGoals, error) {
	var row goalsRow
	if err := gs.db.WithContext(ctx).First(&row, "user_id = ?", uid.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrGoalsNotFound
		}
		return nil, fmt.Errorf("get nutrition goals: %w", err)
	}
	return &entity.NutritionGoals{
		UserID:   parseUUID(row.UserID),
		Calories: row.Calories,
		Protein:  row.Protein,
		Carbs:    row.Carbs,
		Fat:      row.Fat,
	}, nil
}

func (gs *GoalsStore) Upsert(ctx context.Context, goals *entity.NutritionGoals) error {
	if goals == nil {
		return errors.New("goals is nil")
	}
	row := goalsRow{
		UserID:   goals.UserID.String(),
		Calories: goals.Calories,
		Protein:  goals.Protein,
		Carbs:    goals.Carbs,
		Fat:      goals.Fat,
	}
	err := gs.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert nutrition goals: %w", err)
	}
	return nil
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/service"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type foodsRepoMock struct {
	state mockState
	foods []entity.Food
}

func (m *foodsRepoMock) List(ctx context.Context) ([]entity.Food, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.foods, nil
}

func (m *foodsRepoMock) GetByID(ctx context.Context, id string) (*entity.Food, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	for i := range m.foods {
		if m.foods[i].ID == id {
			return &m.foods[i], nil
		}
	}
	return nil, errorvalues.ErrFoodNotFound
}

func (m *foodsRepoMock) Seed(ctx context.Context, foods []entity.Food) error {
	m.foods = append(m.foods, foods...)
	return nil
}

type entriesRepoMock struct {
	state   mockState
	entries []entity.FoodEntry
}

func (m *entriesRepoMock) Create(ctx context.Context, entry *entity.FoodEntry) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *entriesRepoMock) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == uid {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrEntryNotFound
}

func (m *entriesRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.FoodEntry, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	entries := make([]entity.FoodEntry, 0)
	for i := range m.entries {
		if m.entries[i].UserID == uid {
			entries = append(entries, m.entries[i])
		}
	}
	return entries, nil
}

func (m *entriesRepoMock) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.FoodEntry, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	entries := make([]entity.FoodEntry, 0)
	for i := range m.entries {
		if m.entries[i].UserID == uid && m.entries[i].Date == date {
			entries = append(entries, m.entries[i])
		}
	}
	return entries, nil
}

type goalsRepoMock struct {
	state mockState
	goals *entity.NutritionGoals
}

func (m *goalsRepoMock) Get(ctx context.Context, uid uuid.UUID) (*entity.NutritionGoals, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	if m.goals == nil {
		return nil, errorvalues.ErrGoalsNotFound
	}
	return m.goals, nil
}

func (m *goalsRepoMock) Upsert(ctx context.Context, goals *entity.NutritionGoals) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	m.goals = goals
	return nil
}

func newNutritionService() (*service.NutritionService, *foodsRepoMock, *entriesRepoMock, *goalsRepoMock) {
	foods := &foodsRepoMock{foods: []entity.Food{
		{ID: "chicken-breast", Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g"},
		{ID: "oatmeal", Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 55, Fat: 5, Serving: "1 cup cooked"},
	}}
	entries := &entriesRepoMock{}
	goals := &goalsRepoMock{}
	return service.NewNutritionService(foods, entries, goals), foods, entries, goals
}

func TestLogFood(t *testing.T) {
	s, _, _, _ := newNutritionService()
	ctx := context.Background()
	uid := uuid.New()
	t.Run("macros are scaled by servings at creation", func(t *testing.T) {
		entry, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
			FoodID:   "chicken-breast",
			Servings: 2,
			Date:     "2026-03-01",
			Meal:     entity.MealLunch,
		})
		require.NoError(t, err)
		assert.Equal(t, "Chicken Breast", entry.FoodName)
		assert.Equal(t, 330.0, entry.Calories)
		assert.Equal(t, 62.0, entry.Protein)
		assert.Equal(t, 0.0, entry.Carbs)
		assert.Equal(t, 7.2, entry.Fat)
		assert.Equal(t, uid, entry.UserID)
	})
	t.Run("unknown food", func(t *testing.T) {
		_, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
			FoodID:   "pizza",
			Servings: 1,
			Date:     "2026-03-01",
			Meal:     entity.MealDinner,
		})
		assert.ErrorIs(t, err, errorvalues.ErrFoodNotFound)
	})
	t.Run("unknown meal slot", func(t *testing.T) {
		_, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
			FoodID:   "oatmeal",
			Servings: 1,
			Date:     "2026-03-01",
			Meal:     "brunch",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("invalid date", func(t *testing.T) {
		_, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
			FoodID:   "oatmeal",
			Servings: 1,
			Date:     "March 1st",
			Meal:     entity.MealBreakfast,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestDeleteEntry(t *testing.T) {
	s, _, _, _ := newNutritionService()
	ctx := context.Background()
	uid := uuid.New()
	entry, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
		FoodID:   "oatmeal",
		Servings: 1,
		Date:     "2026-03-01",
		Meal:     entity.MealBreakfast,
	})
	require.NoError(t, err)
	t.Run("other user's entry stays", func(t *testing.T) {
		err := s.DeleteEntry(ctx, entry.ID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, s.DeleteEntry(ctx, entry.ID, uid))
	})
	t.Run("already deleted", func(t *testing.T) {
		err := s.DeleteEntry(ctx, entry.ID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestDailySummary(t *testing.T) {
	s, _, _, _ := newNutritionService()
	ctx := context.Background()
	uid := uuid.New()
	_, err := s.LogFood(ctx, uid, &service.LogFoodRequest{
		FoodID: "oatmeal", Servings: 1, Date: "2026-03-01", Meal: entity.MealBreakfast,
	})
	require.NoError(t, err)
	_, err = s.LogFood(ctx, uid, &service.LogFoodRequest{
		FoodID: "chicken-breast", Servings: 2, Date: "2026-03-01", Meal: entity.MealLunch,
	})
	require.NoError(t, err)
	_, err = s.LogFood(ctx, uid, &service.LogFoodRequest{
		FoodID: "oatmeal", Servings: 1, Date: "2026-03-02", Meal: entity.MealBreakfast,
	})
	require.NoError(t, err)

	summary, err := s.DailySummary(ctx, uid, "2026-03-01")
	require.NoError(t, err)
	t.Run("totals cover only the requested day", func(t *testing.T) {
		assert.Len(t, summary.Day.Entries, 2)
		assert.Equal(t, 630.0, summary.Day.TotalCalories)
		assert.Equal(t, 72.0, summary.Day.TotalProtein)
	})
	t.Run("all four meal slots are present", func(t *testing.T) {
		require.Len(t, summary.Meals, 4)
		assert.Equal(t, entity.MealBreakfast, summary.Meals[0].Meal)
		assert.Len(t, summary.Meals[0].Entries, 1)
		assert.Len(t, summary.Meals[1].Entries, 1)
		assert.Empty(t, summary.Meals[2].Entries)
		assert.Empty(t, summary.Meals[3].Entries)
	})
	t.Run("default goals before first edit", func(t *testing.T) {
		assert.Equal(t, entity.DefaultNutritionGoals(uid), summary.Goals)
		assert.Equal(t, 630.0/2000*100, summary.Progress.Calories)
	})
}

func TestGoalsLifecycle(t *testing.T) {
	s, _, _, _ := newNutritionService()
	ctx := context.Background()
	uid := uuid.New()
	t.Run("defaults before first edit", func(t *testing.T) {
		goals, err := s.GetGoals(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultNutritionGoals(uid), goals)
	})
	t.Run("update then read back", func(t *testing.T) {
		err := s.UpdateGoals(ctx, uid, &service.GoalsRequest{
			Calories: 2500, Protein: 180, Carbs: 280, Fat: 80,
		})
		require.NoError(t, err)
		goals, err := s.GetGoals(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, goals.Calories)
		assert.Equal(t, 180.0, goals.Protein)
	})
	t.Run("rejects non-positive targets", func(t *testing.T) {
		err := s.UpdateGoals(ctx, uid, &service.GoalsRequest{
			Calories: 0, Protein: 180, Carbs: 280, Fat: 80,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

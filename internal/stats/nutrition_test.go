package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

var testEntries = []entity.FoodEntry{
	{FoodName: "Oatmeal", Date: "2026-03-01", Meal: entity.MealBreakfast, Calories: 300, Protein: 10, Carbs: 55, Fat: 5},
	{FoodName: "Chicken Breast", Date: "2026-03-01", Meal: entity.MealLunch, Calories: 330, Protein: 62, Carbs: 0, Fat: 7},
	{FoodName: "Rice", Date: "2026-03-01", Meal: entity.MealLunch, Calories: 200, Protein: 4, Carbs: 45, Fat: 0},
	{FoodName: "Apple", Date: "2026-03-02", Meal: entity.MealSnack, Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
}

func TestDailyTotals(t *testing.T) {
	t.Run("sums only the requested day", func(t *testing.T) {
		day := stats.DailyTotals(testEntries, "2026-03-01")
		assert.Equal(t, "2026-03-01", day.Date)
		require.Len(t, day.Entries, 3)
		assert.Equal(t, 830.0, day.TotalCalories)
		assert.Equal(t, 76.0, day.TotalProtein)
		assert.Equal(t, 100.0, day.TotalCarbs)
		assert.Equal(t, 12.0, day.TotalFat)
	})
	t.Run("empty day has zero totals and non-nil entries", func(t *testing.T) {
		day := stats.DailyTotals(testEntries, "2026-03-10")
		assert.NotNil(t, day.Entries)
		assert.Empty(t, day.Entries)
		assert.Zero(t, day.TotalCalories)
	})
}

func TestMealBreakdown(t *testing.T) {
	meals := stats.MealBreakdown(testEntries, "2026-03-01")
	require.Len(t, meals, len(entity.MealSlots))

	t.Run("slots appear in display order even when empty", func(t *testing.T) {
		for i, slot := range entity.MealSlots {
			assert.Equal(t, slot, meals[i].Meal)
			assert.NotNil(t, meals[i].Entries)
		}
	})
	t.Run("entries land in their slot", func(t *testing.T) {
		assert.Len(t, meals[0].Entries, 1)
		assert.Len(t, meals[1].Entries, 2)
		assert.Empty(t, meals[2].Entries)
		assert.Empty(t, meals[3].Entries)
		assert.Equal(t, 530.0, meals[1].TotalCalories)
	})
	t.Run("unknown meal values are dropped", func(t *testing.T) {
		weird := []entity.FoodEntry{{Date: "2026-03-01", Meal: "brunch", Calories: 500}}
		got := stats.MealBreakdown(weird, "2026-03-01")
		for _, m := range got {
			assert.Empty(t, m.Entries)
		}
	})
}

func TestProgressPercentage(t *testing.T) {
	t.Run("plain ratio", func(t *testing.T) {
		assert.Equal(t, 50.0, stats.ProgressPercentage(1000, 2000))
	})
	t.Run("capped at 100", func(t *testing.T) {
		assert.Equal(t, 100.0, stats.ProgressPercentage(2500, 2000))
	})
	t.Run("zero or negative current is 0", func(t *testing.T) {
		assert.Equal(t, 0.0, stats.ProgressPercentage(0, 2000))
		assert.Equal(t, 0.0, stats.ProgressPercentage(-5, 2000))
	})
}

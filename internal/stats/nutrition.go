package stats

import "github.com/dangdinh87/gym-tracker/pkg/entity"

// DailyNutrition is the food log of one calendar day with summed macros.
type DailyNutrition struct {
	Date          string             `json:"date"`
	Entries       []entity.FoodEntry `json:"entries"`
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCarbs    float64            `json:"total_carbs"`
	TotalFat      float64            `json:"total_fat"`
}

// MealNutrition is one meal slot of a day. Slots with no entries still
// appear with zero totals and an empty entry list.
type MealNutrition struct {
	Meal          string             `json:"meal"`
	Entries       []entity.FoodEntry `json:"entries"`
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCarbs    float64            `json:"total_carbs"`
	TotalFat      float64            `json:"total_fat"`
}

// DailyTotals filters entries to the exact calendar day and sums their
// already-scaled macros. A day without entries yields zero totals and an
// empty (non-nil) entry list.
func DailyTotals(entries []entity.FoodEntry, date string) DailyNutrition {
	day := DailyNutrition{
		Date:    date,
		Entries: make([]entity.FoodEntry, 0),
	}
	for i := range entries {
		if entries[i].Date != date {
			continue
		}
		day.Entries = append(day.Entries, entries[i])
		day.TotalCalories += entries[i].Calories
		day.TotalProtein += entries[i].Protein
		day.TotalCarbs += entries[i].Carbs
		day.TotalFat += entries[i].Fat
	}
	return day
}

// MealBreakdown partitions one day's entries into the four fixed meal
// slots, in display order. Entries with an unknown meal value are dropped.
func MealBreakdown(entries []entity.FoodEntry, date string) []MealNutrition {
	byMeal := make(map[string]*MealNutrition, len(entity.MealSlots))
	meals := make([]MealNutrition, len(entity.MealSlots))
	for i, slot := range entity.MealSlots {
		meals[i] = MealNutrition{Meal: slot, Entries: make([]entity.FoodEntry, 0)}
		byMeal[slot] = &meals[i]
	}
	for i := range entries {
		if entries[i].Date != date {
			continue
		}
		meal, ok := byMeal[entries[i].Meal]
		if !ok {
			continue
		}
		meal.Entries = append(meal.Entries, entries[i])
		meal.TotalCalories += entries[i].Calories
		meal.TotalProtein += entries[i].Protein
		meal.TotalCarbs += entries[i].Carbs
		meal.TotalFat += entries[i].Fat
	}
	return meals
}

// ProgressPercentage reports how far current is toward goal, capped at 100.
// Callers validate that goal is positive before storing it.
func ProgressPercentage(current, goal float64) float64 {
	if current <= 0 {
		return 0
	}
	pct := current / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}

package seed

import "github.com/dangdinh87/gym-tracker/pkg/entity"

// Foods is the reference food catalog. Macros are per one serving.
func Foods() []entity.Food {
	return []entity.Food{
		{ID: "chicken-breast", Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Serving: "100g"},
		{ID: "salmon", Name: "Salmon", Calories: 208, Protein: 22, Carbs: 0, Fat: 12, Serving: "100g"},
		{ID: "eggs", Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Serving: "100g (2 large)"},
		{ID: "greek-yogurt", Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Serving: "100g"},
		{ID: "whey-protein", Name: "Whey Protein", Calories: 120, Protein: 24, Carbs: 3, Fat: 1.5, Serving: "1 scoop (30g)"},
		{ID: "white-rice", Name: "White Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Serving: "100g cooked"},
		{ID: "oats", Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9, Serving: "100g dry"},
		{ID: "sweet-potato", Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Serving: "100g"},
		{ID: "banana", Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Serving: "1 medium (100g)"},
		{ID: "whole-wheat-bread", Name: "Whole Wheat Bread", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Serving: "100g"},
		{ID: "olive-oil", Name: "Olive Oil", Calories: 119, Protein: 0, Carbs: 0, Fat: 13.5, Serving: "1 tbsp"},
		{ID: "almonds", Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Serving: "28g (1 oz)"},
		{ID: "peanut-butter", Name: "Peanut Butter", Calories: 188, Protein: 8, Carbs: 6, Fat: 16, Serving: "2 tbsp"},
		{ID: "avocado", Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fat: 15, Serving: "100g"},
		{ID: "broccoli", Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Serving: "100g"},
		{ID: "cottage-cheese", Name: "Cottage Cheese", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, Serving: "100g"},
	}
}

package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/repository"
	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type NutritionService struct {
	foodsRepo   repository.FoodsRepositoryI
	entriesRepo repository.FoodEntriesRepositoryI
	goalsRepo   repository.GoalsRepositoryI
}

func NewNutritionService(foodsRepo repository.FoodsRepositoryI, entriesRepo repository.FoodEntriesRepositoryI, goalsRepo repository.GoalsRepositoryI) *NutritionService {
	if foodsRepo == nil || entriesRepo == nil || goalsRepo == nil {
		log.Fatal("on nutrition service provided nil repos")
	}
	return &NutritionService{
		foodsRepo:   foodsRepo,
		entriesRepo: entriesRepo,
		goalsRepo:   goalsRepo,
	}
}

func (ns *NutritionService) ListFoods(ctx context.Context) ([]entity.Food, error) {
	foods, err := ns.foodsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("foods repository error: " + err.Error())
	}
	return foods, nil
}

// LogFood scales the catalog macros by servings once, at creation time.
// Later catalog edits must not change what was already logged.
func (ns *NutritionService) LogFood(ctx context.Context, uid uuid.UUID, req *LogFoodRequest) (*entity.FoodEntry, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	food, err := ns.foodsRepo.GetByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("foods repository error: " + err.Error())
	}
	entry := entity.FoodEntry{
		ID:       uuid.New(),
		UserID:   uid,
		FoodID:   food.ID,
		FoodName: food.Name,
		Servings: req.Servings,
		Calories: food.Calories * req.Servings,
		Protein:  food.Protein * req.Servings,
		Carbs:    food.Carbs * req.Servings,
		Fat:      food.Fat * req.Servings,
		Date:     req.Date,
		Meal:     req.Meal,
	}
	err = ns.entriesRepo.Create(ctx, &entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("food entries repository error: " + err.Error())
	}
	return &entry, nil
}

func (ns *NutritionService) DeleteEntry(ctx context.Context, entryID, uid uuid.UUID) error {
	err := ns.entriesRepo.Delete(ctx, entryID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("food entries repository error: " + err.Error())
	}
	return nil
}

func (ns *NutritionService) DailySummary(ctx context.Context, uid uuid.UUID, date string) (*DailySummary, error) {
	entries, err := ns.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		return nil, errors.New("food entries repository error: " + err.Error())
	}
	goals, err := ns.GetGoals(ctx, uid)
	if err != nil {
		return nil, err
	}
	day := stats.DailyTotals(entries, date)
	return &DailySummary{
		Day:   day,
		Meals: stats.MealBreakdown(entries, date),
		Goals: goals,
		Progress: MacroProgress{
			Calories: stats.ProgressPercentage(day.TotalCalories, goals.Calories),
			Protein:  stats.ProgressPercentage(day.TotalProtein, goals.Protein),
			Carbs:    stats.ProgressPercentage(day.TotalCarbs, goals.Carbs),
			Fat:      stats.ProgressPercentage(day.TotalFat, goals.Fat),
		},
	}, nil
}

func (ns *NutritionService) GetGoals(ctx context.Context, uid uuid.UUID) (entity.NutritionGoals, error) {
	goals, err := ns.goalsRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalsNotFound) {
			return entity.DefaultNutritionGoals(uid), nil
		}
		return entity.NutritionGoals{}, errors.New("goals repository error: " + err.Error())
	}
	return *goals, nil
}

func (ns *NutritionService) UpdateGoals(ctx context.Context, uid uuid.UUID, req *GoalsRequest) error {
	if err := validateRequest(*req); err != nil {
		return err
	}
	err := ns.goalsRepo.Upsert(ctx, &entity.NutritionGoals{
		UserID:   uid,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

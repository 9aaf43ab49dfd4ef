// @title Gym-tracker API
// @description API for workout and nutrition tracker
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/dangdinh87/gym-tracker/internal/api"
	"github.com/dangdinh87/gym-tracker/internal/repository"
	"github.com/dangdinh87/gym-tracker/internal/seed"
	"github.com/dangdinh87/gym-tracker/internal/service"
	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/config"
	jwtservice "github.com/dangdinh87/gym-tracker/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	exercisesRepo := repository.NewExercisesRepo(&dbCfg)
	foodsRepo := repository.NewFoodsRepo(&dbCfg)
	seedCatalogs(exercisesRepo, foodsRepo)

	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	workoutService := service.NewWorkoutService(repository.NewWorkoutsRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		WorkoutService:   workoutService,
		CatalogService:   service.NewCatalogService(exercisesRepo),
		NutritionService: service.NewNutritionService(foodsRepo, repository.NewFoodEntriesRepo(&dbCfg), repository.NewGoalsRepo(&dbCfg)),
		TemplateService:  service.NewTemplateService(seed.Templates(), workoutService),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

func seedCatalogs(exercisesRepo *repository.ExercisesRepository, foodsRepo *repository.FoodsRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	if err := exercisesRepo.Seed(ctx, seed.Exercises()); err != nil {
		log.Fatal("seeding exercise catalog error: " + err.Error())
	}
	if err := foodsRepo.Seed(ctx, seed.Foods()); err != nil {
		log.Fatal("seeding food catalog error: " + err.Error())
	}
}

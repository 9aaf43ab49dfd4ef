package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/repository"
	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// CatalogService answers exercise library queries. The catalog is small and
// read-only, so every call works on a fresh snapshot from the repository
// and runs the pure filter over it.
type CatalogService struct {
	repo repository.ExercisesRepositoryI
}

func NewCatalogService(exercisesRepo repository.ExercisesRepositoryI) *CatalogService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &CatalogService{
		repo: exercisesRepo,
	}
}

func (cs *CatalogService) ListExercises(ctx context.Context, filter stats.ExerciseFilter, page, pageSize int) (stats.ExercisePage, error) {
	catalog, err := cs.repo.List(ctx)
	if err != nil {
		return stats.ExercisePage{}, errors.New("exercises repository error: " + err.Error())
	}
	return stats.FilterPage(catalog, filter, page, pageSize), nil
}

func (cs *CatalogService) GetFacets(ctx context.Context) (stats.Facets, error) {
	catalog, err := cs.repo.List(ctx)
	if err != nil {
		return stats.Facets{}, errors.New("exercises repository error: " + err.Error())
	}
	return stats.CatalogFacets(catalog), nil
}

func (cs *CatalogService) MuscleGroups(ctx context.Context) ([]string, error) {
	catalog, err := cs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return stats.AllMuscleGroups(catalog), nil
}

func (cs *CatalogService) GetExercise(ctx context.Context, id string) (*entity.Exercise, error) {
	catalog, err := cs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	ex := stats.ExerciseByID(catalog, id)
	if ex == nil {
		return nil, errorvalues.ErrExerciseNotFound
	}
	return ex, nil
}

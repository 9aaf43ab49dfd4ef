package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/seed"
	"github.com/dangdinh87/gym-tracker/internal/service"
	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type exercisesRepoMock struct {
	state   mockState
	catalog []entity.Exercise
}

func (m *exercisesRepoMock) List(ctx context.Context) ([]entity.Exercise, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.catalog, nil
}

func (m *exercisesRepoMock) Seed(ctx context.Context, exercises []entity.Exercise) error {
	m.catalog = append(m.catalog, exercises...)
	return nil
}

func TestListExercises(t *testing.T) {
	mock := &exercisesRepoMock{catalog: seed.Exercises()}
	s := service.NewCatalogService(mock)
	ctx := context.Background()
	t.Run("first page of the full catalog", func(t *testing.T) {
		page, err := s.ListExercises(ctx, stats.ExerciseFilter{}, 1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, len(mock.catalog), page.TotalCount)
	})
	t.Run("category filter narrows results", func(t *testing.T) {
		page, err := s.ListExercises(ctx, stats.ExerciseFilter{Category: entity.CategoryStretching}, 1, 50)
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, ex := range page.Items {
			assert.Equal(t, entity.CategoryStretching, ex.Category)
		}
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.ListExercises(ctx, stats.ExerciseFilter{}, 1, 10)
		assert.Error(t, err)
		mock.state = stateSuccess
	})
}

func TestGetFacets(t *testing.T) {
	mock := &exercisesRepoMock{catalog: seed.Exercises()}
	s := service.NewCatalogService(mock)
	facets, err := s.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.FilterAll, facets.Categories[0])
	assert.Contains(t, facets.Categories, entity.CategoryStrength)
	assert.Contains(t, facets.Levels, entity.LevelBeginner)
}

func TestMuscleGroups(t *testing.T) {
	mock := &exercisesRepoMock{catalog: seed.Exercises()}
	s := service.NewCatalogService(mock)
	muscles, err := s.MuscleGroups(context.Background())
	require.NoError(t, err)
	assert.Contains(t, muscles, "chest")
	assert.Contains(t, muscles, "quadriceps")
}

func TestGetExercise(t *testing.T) {
	mock := &exercisesRepoMock{catalog: seed.Exercises()}
	s := service.NewCatalogService(mock)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		ex, err := s.GetExercise(ctx, "bench-press")
		require.NoError(t, err)
		assert.Equal(t, "Bench Press", ex.Name)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := s.GetExercise(ctx, "time-travel")
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
}

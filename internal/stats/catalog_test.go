package stats_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

func strptr(s string) *string {
	return &s
}

var testCatalog = []entity.Exercise{
	{
		ID:             "bench-press",
		Name:           "Bench Press",
		Category:       entity.CategoryStrength,
		Level:          entity.LevelIntermediate,
		PrimaryMuscles: []string{"chest"},
		Equipment:      strptr("barbell"),
		Aliases:        []string{"flat bench"},
	},
	{
		ID:             "air-squat",
		Name:           "Air Squat",
		Category:       entity.CategoryStrength,
		Level:          entity.LevelBeginner,
		PrimaryMuscles: []string{"quadriceps"},
	},
	{
		ID:               "deadlift",
		Name:             "Deadlift",
		Category:         entity.CategoryPowerlifting,
		Level:            entity.LevelExpert,
		PrimaryMuscles:   []string{"lower back"},
		SecondaryMuscles: []string{"hamstrings"},
		Equipment:        strptr("barbell"),
	},
	{
		ID:             "hamstring-stretch",
		Name:           "Hamstring Stretch",
		Category:       entity.CategoryStretching,
		Level:          entity.LevelBeginner,
		PrimaryMuscles: []string{"hamstrings"},
	},
}

func TestFilterExercises(t *testing.T) {
	t.Run("zero filter matches everything ordered by name", func(t *testing.T) {
		got := stats.FilterExercises(testCatalog, stats.ExerciseFilter{})
		require.Len(t, got, len(testCatalog))
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Name, got[i].Name)
		}
	})
	t.Run("wildcard equals empty for category and level", func(t *testing.T) {
		all := stats.FilterExercises(testCatalog, stats.ExerciseFilter{Category: stats.FilterAll, Level: stats.FilterAll})
		empty := stats.FilterExercises(testCatalog, stats.ExerciseFilter{})
		assert.Equal(t, empty, all)
	})
	t.Run("category filter", func(t *testing.T) {
		got := stats.FilterExercises(testCatalog, stats.ExerciseFilter{Category: entity.CategoryStrength})
		require.Len(t, got, 2)
		for _, ex := range got {
			assert.Equal(t, entity.CategoryStrength, ex.Category)
		}
	})
	t.Run("search is case-insensitive over name", func(t *testing.T) {
		got := stats.FilterExercises(testCatalog, stats.ExerciseFilter{SearchTerm: "BENCH"})
		require.Len(t, got, 1)
		assert.Equal(t, "bench-press", got[0].ID)
	})
	t.Run("search covers muscles and aliases", func(t *testing.T) {
		byMuscle := stats.FilterExercises(testCatalog, stats.ExerciseFilter{SearchTerm: "hamstring"})
		assert.Len(t, byMuscle, 2)
		byAlias := stats.FilterExercises(testCatalog, stats.ExerciseFilter{SearchTerm: "flat bench"})
		require.Len(t, byAlias, 1)
		assert.Equal(t, "bench-press", byAlias[0].ID)
	})
	t.Run("concrete equipment never matches entries without equipment", func(t *testing.T) {
		got := stats.FilterExercises(testCatalog, stats.ExerciseFilter{Equipment: "barbell"})
		require.Len(t, got, 2)
		for _, ex := range got {
			require.NotNil(t, ex.Equipment)
			assert.Equal(t, "barbell", *ex.Equipment)
		}
	})
	t.Run("combined predicates are conjunctive", func(t *testing.T) {
		got := stats.FilterExercises(testCatalog, stats.ExerciseFilter{
			Category:  entity.CategoryStrength,
			Level:     entity.LevelBeginner,
			Equipment: stats.FilterAll,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "air-squat", got[0].ID)
	})
}

func TestFilterPage(t *testing.T) {
	catalog := make([]entity.Exercise, 0, 25)
	for i := 0; i < 25; i++ {
		catalog = append(catalog, entity.Exercise{
			ID:       fmt.Sprintf("ex-%02d", i),
			Name:     fmt.Sprintf("Exercise %02d", i),
			Category: entity.CategoryStrength,
			Level:    entity.LevelBeginner,
		})
	}
	t.Run("pages partition the result", func(t *testing.T) {
		seen := make([]entity.Exercise, 0, len(catalog))
		page := 1
		for {
			p := stats.FilterPage(catalog, stats.ExerciseFilter{}, page, 10)
			assert.Equal(t, 25, p.TotalCount)
			assert.Equal(t, 3, p.TotalPages)
			if len(p.Items) == 0 {
				break
			}
			seen = append(seen, p.Items...)
			page++
		}
		assert.Equal(t, stats.FilterExercises(catalog, stats.ExerciseFilter{}), seen)
	})
	t.Run("page beyond the end is empty", func(t *testing.T) {
		p := stats.FilterPage(catalog, stats.ExerciseFilter{}, 99, 10)
		assert.Empty(t, p.Items)
		assert.Equal(t, 25, p.TotalCount)
	})
	t.Run("page and size are clamped to 1", func(t *testing.T) {
		p := stats.FilterPage(catalog, stats.ExerciseFilter{}, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, p.PageSize)
		assert.Len(t, p.Items, 1)
	})
	t.Run("stable order across random catalogs", func(t *testing.T) {
		faker := gofakeit.New(11)
		random := make([]entity.Exercise, 0, 40)
		for i := 0; i < 40; i++ {
			random = append(random, entity.Exercise{
				ID:       faker.UUID(),
				Name:     faker.Noun(),
				Category: entity.CategoryStrength,
				Level:    entity.LevelBeginner,
			})
		}
		first := stats.FilterPage(random, stats.ExerciseFilter{}, 2, 7)
		second := stats.FilterPage(random, stats.ExerciseFilter{}, 2, 7)
		assert.Equal(t, first, second)
	})
}

func TestCatalogFacets(t *testing.T) {
	facets := stats.CatalogFacets(testCatalog)
	t.Run("every facet starts with the wildcard", func(t *testing.T) {
		assert.Equal(t, stats.FilterAll, facets.Categories[0])
		assert.Equal(t, stats.FilterAll, facets.EquipmentTypes[0])
		assert.Equal(t, stats.FilterAll, facets.Levels[0])
	})
	t.Run("values are distinct and sorted", func(t *testing.T) {
		assert.Equal(t, []string{stats.FilterAll, entity.CategoryPowerlifting, entity.CategoryStrength, entity.CategoryStretching}, facets.Categories)
		assert.Equal(t, []string{stats.FilterAll, "barbell"}, facets.EquipmentTypes)
		assert.True(t, sort.StringsAreSorted(facets.Levels[1:]))
	})
}

func TestExerciseByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ex := stats.ExerciseByID(testCatalog, "deadlift")
		require.NotNil(t, ex)
		assert.Equal(t, "Deadlift", ex.Name)
	})
	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, stats.ExerciseByID(testCatalog, "unknown"))
	})
}

func TestExercisesByMuscle(t *testing.T) {
	got := stats.ExercisesByMuscle(testCatalog, "hamstrings")
	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, "deadlift")
	assert.Contains(t, ids, "hamstring-stretch")
}

func TestAllMuscleGroups(t *testing.T) {
	muscles := stats.AllMuscleGroups(testCatalog)
	assert.True(t, sort.StringsAreSorted(muscles))
	assert.Contains(t, muscles, "hamstrings")
	assert.Contains(t, muscles, "chest")
	// secondary-only mention still counts once
	count := 0
	for _, m := range muscles {
		if m == "hamstrings" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

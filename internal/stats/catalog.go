package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// FilterAll is the wildcard value for category/level/equipment filters.
// It is distinct from an empty string: an empty filter field also matches
// everything, but a catalog entry with no equipment is matched only by
// the wildcard, never by a concrete value.
const FilterAll = "All"

// ExerciseFilter describes the catalog filter form. Zero value matches the
// whole catalog.
type ExerciseFilter struct {
	SearchTerm string
	Category   string
	Level      string
	Equipment  string
}

// ExercisePage is one page of a filtered catalog.
type ExercisePage struct {
	Items      []entity.Exercise `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

// Facets are the filter options derived from the whole catalog, each
// prefixed with the wildcard.
type Facets struct {
	Categories     []string `json:"categories"`
	EquipmentTypes []string `json:"equipment_types"`
	Levels         []string `json:"levels"`
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

func matchesSearch(ex *entity.Exercise, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(ex.Name), term) {
		return true
	}
	for _, m := range ex.PrimaryMuscles {
		if strings.Contains(strings.ToLower(m), term) {
			return true
		}
	}
	for _, m := range ex.SecondaryMuscles {
		if strings.Contains(strings.ToLower(m), term) {
			return true
		}
	}
	for _, a := range ex.Aliases {
		if strings.Contains(strings.ToLower(a), term) {
			return true
		}
	}
	return false
}

// Matches reports whether ex satisfies every predicate of the filter.
func (f ExerciseFilter) Matches(ex *entity.Exercise) bool {
	if !matchesSearch(ex, strings.ToLower(f.SearchTerm)) {
		return false
	}
	if !wildcard(f.Category) && ex.Category != f.Category {
		return false
	}
	if !wildcard(f.Level) && ex.Level != f.Level {
		return false
	}
	if !wildcard(f.Equipment) {
		if ex.Equipment == nil || *ex.Equipment != f.Equipment {
			return false
		}
	}
	return true
}

// FilterExercises returns catalog entries satisfying the filter, ordered by
// name ascending. The order is deterministic for a fixed catalog.
func FilterExercises(catalog []entity.Exercise, f ExerciseFilter) []entity.Exercise {
	matched := make([]entity.Exercise, 0)
	for i := range catalog {
		if f.Matches(&catalog[i]) {
			matched = append(matched, catalog[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return matched
}

// FilterPage filters and orders the catalog, then slices out one page.
// Pages are 1-indexed; a page beyond the last one is empty, not an error.
func FilterPage(catalog []entity.Exercise, f ExerciseFilter, page, pageSize int) ExercisePage {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	matched := FilterExercises(catalog, f)
	total := len(matched)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	from := (page - 1) * pageSize
	to := from + pageSize
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}
	return ExercisePage{
		Items:      matched[from:to],
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

// CatalogFacets collects the distinct filter values across the entire
// catalog, not a filtered subset. Entries without equipment contribute
// nothing to the equipment facet.
func CatalogFacets(catalog []entity.Exercise) Facets {
	return Facets{
		Categories: facetValues(catalog, func(ex *entity.Exercise) (string, bool) {
			return ex.Category, true
		}),
		EquipmentTypes: facetValues(catalog, func(ex *entity.Exercise) (string, bool) {
			if ex.Equipment == nil {
				return "", false
			}
			return *ex.Equipment, true
		}),
		Levels: facetValues(catalog, func(ex *entity.Exercise) (string, bool) {
			return ex.Level, true
		}),
	}
}

func facetValues(catalog []entity.Exercise, get func(*entity.Exercise) (string, bool)) []string {
	seen := make(map[string]struct{})
	for i := range catalog {
		if v, ok := get(&catalog[i]); ok && v != "" {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen)+1)
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{FilterAll}, values...)
}

// ExercisesByMuscle returns catalog entries that train the muscle as either
// a primary or secondary target.
func ExercisesByMuscle(catalog []entity.Exercise, muscle string) []entity.Exercise {
	matched := make([]entity.Exercise, 0)
	for i := range catalog {
		if containsString(catalog[i].PrimaryMuscles, muscle) || containsString(catalog[i].SecondaryMuscles, muscle) {
			matched = append(matched, catalog[i])
		}
	}
	return matched
}

// ExerciseByID looks up a catalog entry. Returns nil when absent.
func ExerciseByID(catalog []entity.Exercise, id string) *entity.Exercise {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// AllMuscleGroups returns the sorted distinct muscles mentioned anywhere in
// the catalog.
func AllMuscleGroups(catalog []entity.Exercise) []string {
	seen := make(map[string]struct{})
	for i := range catalog {
		for _, m := range catalog[i].PrimaryMuscles {
			seen[m] = struct{}{}
		}
		for _, m := range catalog[i].SecondaryMuscles {
			seen[m] = struct{}{}
		}
	}
	muscles := make([]string, 0, len(seen))
	for m := range seen {
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)
	return muscles
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

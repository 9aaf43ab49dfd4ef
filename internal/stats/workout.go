package stats

import (
	"sort"
	"time"

	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// PersonalRecord is one set the user flagged as a PR, flattened out of its
// workout for display.
type PersonalRecord struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Date         string  `json:"date"`
}

// WorkoutSummary is the derived numbers for a single workout.
type WorkoutSummary struct {
	TotalSets           int     `json:"total_sets"`
	TotalVolume         float64 `json:"total_volume"`
	PersonalRecordCount int     `json:"personal_record_count"`
}

// CollectionSummary is the derived numbers for a whole workout history.
type CollectionSummary struct {
	TotalWorkouts     int     `json:"total_workouts"`
	CompletedWorkouts int     `json:"completed_workouts"`
	CompletionRate    float64 `json:"completion_rate"`
	TotalVolume       float64 `json:"total_volume"`
	TotalSets         int     `json:"total_sets"`
}

// ExerciseVolume is the workload of one logged exercise: sum of weight*reps
// over its sets.
func ExerciseVolume(ex *entity.WorkoutExercise) float64 {
	var volume float64
	for i := range ex.Sets {
		volume += ex.Sets[i].Weight * float64(ex.Sets[i].Reps)
	}
	return volume
}

// ExerciseMaxWeight is the heaviest set of the exercise, 0 when it has no
// sets.
func ExerciseMaxWeight(ex *entity.WorkoutExercise) float64 {
	var max float64
	for i := range ex.Sets {
		if ex.Sets[i].Weight > max {
			max = ex.Sets[i].Weight
		}
	}
	return max
}

// SummarizeWorkout derives set count, volume and PR count for one workout.
// A workout with no exercises yields all zeroes.
func SummarizeWorkout(w *entity.Workout) WorkoutSummary {
	var s WorkoutSummary
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		s.TotalSets += len(ex.Sets)
		s.TotalVolume += ExerciseVolume(ex)
		for j := range ex.Sets {
			if ex.Sets[j].IsPersonalRecord {
				s.PersonalRecordCount++
			}
		}
	}
	return s
}

// SummarizeCollection derives history-wide numbers. The completion rate of
// an empty history is 0, never NaN.
func SummarizeCollection(workouts []entity.Workout) CollectionSummary {
	var s CollectionSummary
	s.TotalWorkouts = len(workouts)
	for i := range workouts {
		if workouts[i].Completed {
			s.CompletedWorkouts++
		}
		ws := SummarizeWorkout(&workouts[i])
		s.TotalVolume += ws.TotalVolume
		s.TotalSets += ws.TotalSets
	}
	if s.TotalWorkouts > 0 {
		s.CompletionRate = float64(s.CompletedWorkouts) / float64(s.TotalWorkouts)
	}
	return s
}

// WindowedCount counts workouts dated within [now-days, now], both bounds
// inclusive. Workouts with unparsable dates are not counted.
func WindowedCount(workouts []entity.Workout, now time.Time, days int) int {
	to := truncateToDay(now)
	from := to.AddDate(0, 0, -days)
	count := 0
	for i := range workouts {
		d, err := time.Parse(entity.DateLayout, workouts[i].Date)
		if err != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			count++
		}
	}
	return count
}

// PersonalRecords flattens every PR-flagged set across the history. Order
// follows the input; use SortRecordsByDateDesc for the display default.
func PersonalRecords(workouts []entity.Workout) []PersonalRecord {
	records := make([]PersonalRecord, 0)
	for i := range workouts {
		w := &workouts[i]
		for j := range w.Exercises {
			ex := &w.Exercises[j]
			for k := range ex.Sets {
				if ex.Sets[k].IsPersonalRecord {
					records = append(records, PersonalRecord{
						ExerciseName: ex.Name,
						Weight:       ex.Sets[k].Weight,
						Reps:         ex.Sets[k].Reps,
						Date:         w.Date,
					})
				}
			}
		}
	}
	return records
}

// SortRecordsByDateDesc orders records most recent first. The date strings
// are calendar days, so lexicographic comparison is chronological.
func SortRecordsByDateDesc(records []PersonalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

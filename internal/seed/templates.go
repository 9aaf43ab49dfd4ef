package seed

import "github.com/dangdinh87/gym-tracker/pkg/entity"

// Templates are pre-built workout outlines. Instantiating one copies its
// exercises into a new workout with empty set lists.
func Templates() []entity.WorkoutTemplate {
	return []entity.WorkoutTemplate{
		{
			ID:       "push-day",
			Name:     "Push Day",
			Category: "Upper Body",
			Exercises: []entity.TemplateExercise{
				{Name: "Bench Press", MuscleGroups: []string{"chest", "triceps", "shoulders"}, Notes: "3-4 sets of 6-8 reps"},
				{Name: "Incline Bench Press", MuscleGroups: []string{"chest", "shoulders"}, Notes: "3 sets of 8-10 reps"},
				{Name: "Overhead Press", MuscleGroups: []string{"shoulders", "triceps"}, Notes: "3 sets of 6-8 reps"},
				{Name: "Lateral Raise", MuscleGroups: []string{"shoulders"}, Notes: "3 sets of 12-15 reps"},
				{Name: "Tricep Extension", MuscleGroups: []string{"triceps"}, Notes: "3 sets of 10-12 reps"},
				{Name: "Dip", MuscleGroups: []string{"chest", "triceps"}, Notes: "3 sets to failure"},
			},
		},
		{
			ID:       "pull-day",
			Name:     "Pull Day",
			Category: "Upper Body",
			Exercises: []entity.TemplateExercise{
				{Name: "Deadlift", MuscleGroups: []string{"lower back", "glutes", "hamstrings"}, Notes: "3 sets of 5 reps"},
				{Name: "Pull-Up", MuscleGroups: []string{"lats", "biceps"}, Notes: "3 sets to failure"},
				{Name: "Barbell Row", MuscleGroups: []string{"middle back", "lats"}, Notes: "3 sets of 8-10 reps"},
				{Name: "Lat Pulldown", MuscleGroups: []string{"lats", "biceps"}, Notes: "3 sets of 10-12 reps"},
				{Name: "Barbell Curl", MuscleGroups: []string{"biceps"}, Notes: "3 sets of 10-12 reps"},
			},
		},
		{
			ID:       "leg-day",
			Name:     "Leg Day",
			Category: "Lower Body",
			Exercises: []entity.TemplateExercise{
				{Name: "Squat", MuscleGroups: []string{"quadriceps", "glutes"}, Notes: "4 sets of 6-8 reps"},
				{Name: "Romanian Deadlift", MuscleGroups: []string{"hamstrings", "glutes"}, Notes: "3 sets of 8-10 reps"},
				{Name: "Leg Press", MuscleGroups: []string{"quadriceps", "glutes"}, Notes: "3 sets of 10-12 reps"},
				{Name: "Plank", MuscleGroups: []string{"abdominals"}, Notes: "3 sets of 45-60 seconds"},
			},
		},
	}
}

package seed

import "github.com/dangdinh87/gym-tracker/pkg/entity"

func ptr(s string) *string { return &s }

// Exercises is the reference catalog loaded on first run. Entries are
// read-only afterwards.
func Exercises() []entity.Exercise {
	return []entity.Exercise{
		{
			ID:               "bench-press",
			Name:             "Bench Press",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"triceps", "shoulders"},
			Equipment:        ptr("barbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Instructions: []string{
				"Lie back on a flat bench and grip the bar slightly wider than shoulder width.",
				"Lower the bar to the middle of the chest under control.",
				"Press the bar back up until the arms are fully extended.",
			},
			Tips:    []string{"Keep the feet flat and the shoulder blades pinched."},
			Aliases: []string{"flat bench"},
		},
		{
			ID:               "incline-bench-press",
			Name:             "Incline Bench Press",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"triceps", "shoulders"},
			Equipment:        ptr("barbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Instructions: []string{
				"Set the bench to a 30-45 degree incline.",
				"Lower the bar to the upper chest and press back up.",
			},
		},
		{
			ID:               "dumbbell-bench-press",
			Name:             "Dumbbell Bench Press",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"triceps", "shoulders"},
			Equipment:        ptr("dumbbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
		},
		{
			ID:               "push-up",
			Name:             "Push-Up",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"triceps", "shoulders", "abdominals"},
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"pushup", "press-up"},
		},
		{
			ID:               "dip",
			Name:             "Dip",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"chest"},
			SecondaryMuscles: []string{"triceps"},
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"chest dip"},
		},
		{
			ID:               "deadlift",
			Name:             "Deadlift",
			Category:         entity.CategoryPowerlifting,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"lower back"},
			SecondaryMuscles: []string{"glutes", "hamstrings", "traps", "forearms"},
			Equipment:        ptr("barbell"),
			Force:            ptr("pull"),
			Mechanic:         ptr("compound"),
			Instructions: []string{
				"Stand with the mid-foot under the bar.",
				"Hinge at the hips, grip the bar and brace.",
				"Drive through the floor and stand up with the bar.",
			},
			Tips: []string{"Keep the bar close to the shins on the way up."},
		},
		{
			ID:               "pull-up",
			Name:             "Pull-Up",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"lats"},
			SecondaryMuscles: []string{"biceps", "middle back"},
			Force:            ptr("pull"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"pullup"},
		},
		{
			ID:               "barbell-row",
			Name:             "Barbell Row",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"middle back"},
			SecondaryMuscles: []string{"lats", "biceps"},
			Equipment:        ptr("barbell"),
			Force:            ptr("pull"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"bent over row"},
		},
		{
			ID:               "lat-pulldown",
			Name:             "Lat Pulldown",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"lats"},
			SecondaryMuscles: []string{"biceps"},
			Equipment:        ptr("cable"),
			Force:            ptr("pull"),
			Mechanic:         ptr("compound"),
		},
		{
			ID:               "squat",
			Name:             "Squat",
			Category:         entity.CategoryPowerlifting,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"quadriceps"},
			SecondaryMuscles: []string{"glutes", "hamstrings", "lower back"},
			Equipment:        ptr("barbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"back squat"},
			Instructions: []string{
				"Rest the bar on the upper back and unrack it.",
				"Sit down until the hips drop below the knees.",
				"Drive back up to a full stand.",
			},
		},
		{
			ID:               "front-squat",
			Name:             "Front Squat",
			Category:         entity.CategoryOlympicLifting,
			Level:            entity.LevelExpert,
			PrimaryMuscles:   []string{"quadriceps"},
			SecondaryMuscles: []string{"glutes", "abdominals"},
			Equipment:        ptr("barbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
		},
		{
			ID:               "leg-press",
			Name:             "Leg Press",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"quadriceps"},
			SecondaryMuscles: []string{"glutes", "hamstrings"},
			Equipment:        ptr("machine"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
		},
		{
			ID:               "romanian-deadlift",
			Name:             "Romanian Deadlift",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"hamstrings"},
			SecondaryMuscles: []string{"glutes", "lower back"},
			Equipment:        ptr("barbell"),
			Force:            ptr("pull"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"RDL"},
		},
		{
			ID:               "overhead-press",
			Name:             "Overhead Press",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelIntermediate,
			PrimaryMuscles:   []string{"shoulders"},
			SecondaryMuscles: []string{"triceps", "abdominals"},
			Equipment:        ptr("barbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"military press", "OHP"},
		},
		{
			ID:               "lateral-raise",
			Name:             "Lateral Raise",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"shoulders"},
			SecondaryMuscles: []string{},
			Equipment:        ptr("dumbbell"),
			Force:            ptr("push"),
			Mechanic:         ptr("isolation"),
			Aliases:          []string{"side raise"},
		},
		{
			ID:               "barbell-curl",
			Name:             "Barbell Curl",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"biceps"},
			SecondaryMuscles: []string{"forearms"},
			Equipment:        ptr("barbell"),
			Force:            ptr("pull"),
			Mechanic:         ptr("isolation"),
		},
		{
			ID:               "tricep-extension",
			Name:             "Tricep Extension",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"triceps"},
			SecondaryMuscles: []string{},
			Equipment:        ptr("cable"),
			Force:            ptr("push"),
			Mechanic:         ptr("isolation"),
			Aliases:          []string{"pushdown"},
		},
		{
			ID:               "plank",
			Name:             "Plank",
			Category:         entity.CategoryStrength,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"abdominals"},
			SecondaryMuscles: []string{"lower back"},
			Force:            ptr("static"),
			Mechanic:         ptr("isolation"),
		},
		{
			ID:               "box-jump",
			Name:             "Box Jump",
			Category:         entity.CategoryPlyometrics,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"quadriceps"},
			SecondaryMuscles: []string{"glutes", "calves"},
			Force:            ptr("push"),
			Mechanic:         ptr("compound"),
		},
		{
			ID:               "farmers-walk",
			Name:             "Farmer's Walk",
			Category:         entity.CategoryStrongman,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"forearms"},
			SecondaryMuscles: []string{"traps", "abdominals"},
			Equipment:        ptr("dumbbell"),
			Force:            ptr("static"),
			Mechanic:         ptr("compound"),
			Aliases:          []string{"farmers carry"},
		},
		{
			ID:               "running",
			Name:             "Running",
			Category:         entity.CategoryCardio,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"quadriceps"},
			SecondaryMuscles: []string{"hamstrings", "calves"},
		},
		{
			ID:               "hamstring-stretch",
			Name:             "Hamstring Stretch",
			Category:         entity.CategoryStretching,
			Level:            entity.LevelBeginner,
			PrimaryMuscles:   []string{"hamstrings"},
			SecondaryMuscles: []string{"lower back"},
			Force:            ptr("static"),
		},
	}
}

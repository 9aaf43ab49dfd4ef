package portability

import (
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// Imported IDs are never trusted: every accepted workout gets fresh
// identities down the tree so re-importing a backup cannot collide with
// existing data.

type importedSet struct {
	Reps             int     `json:"reps"`
	Weight           float64 `json:"weight"`
	RPE              *int    `json:"rpe"`
	RestTime         *int    `json:"rest_time"`
	IsPersonalRecord bool    `json:"is_personal_record"`
}

type importedExercise struct {
	Name         string        `json:"name"`
	MuscleGroups []string      `json:"muscle_groups"`
	Sets         []importedSet `json:"sets"`
	Notes        string        `json:"notes"`
}

type importedWorkout struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Date      string              `json:"date"`
	Duration  *int                `json:"duration"`
	Exercises *[]importedExercise `json:"exercises"`
	Notes     string              `json:"notes"`
	Completed bool                `json:"completed"`
}

// Workouts stay raw so one malformed entry cannot poison the whole file;
// each is decoded on its own and counted as skipped when it does not parse.
type importedArchive struct {
	Workouts *[]json.RawMessage `json:"workouts"`
}

// ImportResult reports what the validity filter did.
type ImportResult struct {
	Workouts []entity.Workout
	Skipped  int
}

// ImportJSON parses a backup file. A workout is accepted only with a
// non-empty id, name, date and a present exercises array; the rest are
// skipped silently. A file without a workouts array is rejected outright.
func ImportJSON(data []byte, userID uuid.UUID) (*ImportResult, error) {
	var archive importedArchive
	if err := sonic.ConfigDefault.Unmarshal(data, &archive); err != nil {
		return nil, errorvalues.ErrBadImportFile
	}
	if archive.Workouts == nil {
		return nil, errorvalues.ErrBadImportFile
	}
	result := &ImportResult{Workouts: make([]entity.Workout, 0, len(*archive.Workouts))}
	for _, raw := range *archive.Workouts {
		var in importedWorkout
		if err := sonic.ConfigDefault.Unmarshal(raw, &in); err != nil {
			result.Skipped++
			continue
		}
		if in.ID == "" || in.Name == "" || in.Date == "" || in.Exercises == nil {
			result.Skipped++
			continue
		}
		result.Workouts = append(result.Workouts, rebuildWorkout(&in, userID))
	}
	return result, nil
}

func rebuildWorkout(in *importedWorkout, userID uuid.UUID) entity.Workout {
	w := entity.Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      in.Name,
		Date:      in.Date,
		Duration:  in.Duration,
		Notes:     in.Notes,
		Completed: in.Completed,
		Exercises: make([]entity.WorkoutExercise, 0, len(*in.Exercises)),
	}
	for _, exIn := range *in.Exercises {
		ex := entity.WorkoutExercise{
			ID:           uuid.New(),
			Name:         exIn.Name,
			MuscleGroups: exIn.MuscleGroups,
			Notes:        exIn.Notes,
			Sets:         make([]entity.Set, 0, len(exIn.Sets)),
		}
		for _, setIn := range exIn.Sets {
			ex.Sets = append(ex.Sets, entity.Set{
				ID:               uuid.New(),
				Reps:             setIn.Reps,
				Weight:           setIn.Weight,
				RPE:              setIn.RPE,
				RestTime:         setIn.RestTime,
				IsPersonalRecord: setIn.IsPersonalRecord,
			})
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w
}

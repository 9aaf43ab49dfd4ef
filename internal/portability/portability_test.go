package portability_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/portability"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

func intptr(v int) *int {
	return &v
}

func sampleWorkouts(uid uuid.UUID) []entity.Workout {
	return []entity.Workout{
		{
			ID:        uuid.New(),
			UserID:    uid,
			Name:      "Push Day",
			Date:      "2026-02-10",
			Duration:  intptr(55),
			Completed: true,
			Exercises: []entity.WorkoutExercise{
				{
					ID:           uuid.New(),
					Name:         "Bench Press",
					MuscleGroups: []string{"chest", "triceps"},
					Notes:        "paused reps",
					Sets: []entity.Set{
						{ID: uuid.New(), Reps: 10, Weight: 60},
						{ID: uuid.New(), Reps: 5, Weight: 80, RPE: intptr(9), IsPersonalRecord: true},
					},
				},
			},
		},
		{
			ID:        uuid.New(),
			UserID:    uid,
			Name:      "Rest Walk",
			Date:      "2026-02-11",
			Exercises: []entity.WorkoutExercise{},
		},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	uid := uuid.New()
	original := sampleWorkouts(uid)
	data, err := portability.ExportJSON(original, time.Date(2026, 2, 12, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var archive portability.Archive
	require.NoError(t, sonic.ConfigDefault.Unmarshal(data, &archive))
	assert.Equal(t, portability.ArchiveVersion, archive.Version)
	assert.Equal(t, "2026-02-12T08:00:00Z", archive.ExportDate)

	newOwner := uuid.New()
	result, err := portability.ImportJSON(data, newOwner)
	require.NoError(t, err)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Workouts, len(original))

	for i := range original {
		got, want := result.Workouts[i], original[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Date, got.Date)
		assert.Equal(t, want.Duration, got.Duration)
		assert.Equal(t, want.Completed, got.Completed)
		assert.Equal(t, newOwner, got.UserID)
		assert.NotEqual(t, want.ID, got.ID)
		require.Len(t, got.Exercises, len(want.Exercises))
		for j := range want.Exercises {
			assert.Equal(t, want.Exercises[j].Name, got.Exercises[j].Name)
			assert.Equal(t, want.Exercises[j].MuscleGroups, got.Exercises[j].MuscleGroups)
			assert.NotEqual(t, want.Exercises[j].ID, got.Exercises[j].ID)
			require.Len(t, got.Exercises[j].Sets, len(want.Exercises[j].Sets))
			for k := range want.Exercises[j].Sets {
				assert.Equal(t, want.Exercises[j].Sets[k].Reps, got.Exercises[j].Sets[k].Reps)
				assert.Equal(t, want.Exercises[j].Sets[k].Weight, got.Exercises[j].Sets[k].Weight)
				assert.Equal(t, want.Exercises[j].Sets[k].RPE, got.Exercises[j].Sets[k].RPE)
				assert.Equal(t, want.Exercises[j].Sets[k].IsPersonalRecord, got.Exercises[j].Sets[k].IsPersonalRecord)
			}
		}
	}
}

func TestImportJSON(t *testing.T) {
	uid := uuid.New()
	t.Run("not json", func(t *testing.T) {
		_, err := portability.ImportJSON([]byte("not json at all"), uid)
		assert.ErrorIs(t, err, errorvalues.ErrBadImportFile)
	})
	t.Run("missing workouts array", func(t *testing.T) {
		_, err := portability.ImportJSON([]byte(`{"version":"1.0"}`), uid)
		assert.ErrorIs(t, err, errorvalues.ErrBadImportFile)
	})
	t.Run("empty workouts array is a valid empty import", func(t *testing.T) {
		result, err := portability.ImportJSON([]byte(`{"workouts":[]}`), uid)
		require.NoError(t, err)
		assert.Empty(t, result.Workouts)
		assert.Zero(t, result.Skipped)
	})
	t.Run("invalid workouts are skipped, valid ones kept", func(t *testing.T) {
		payload := []byte(`{"workouts":[
			{"id":"a","name":"Good","date":"2026-01-01","exercises":[]},
			{"id":"","name":"No ID","date":"2026-01-01","exercises":[]},
			{"id":"b","name":"","date":"2026-01-01","exercises":[]},
			{"id":"c","name":"No Date","date":"","exercises":[]},
			{"id":"d","name":"No Exercises","date":"2026-01-01"}
		]}`)
		result, err := portability.ImportJSON(payload, uid)
		require.NoError(t, err)
		require.Len(t, result.Workouts, 1)
		assert.Equal(t, "Good", result.Workouts[0].Name)
		assert.Equal(t, 4, result.Skipped)
	})
	t.Run("type-mismatched workout does not reject the file", func(t *testing.T) {
		payload := []byte(`{"workouts":[
			{"id":"a","name":"Good","date":"2026-01-01","exercises":[]},
			{"id":"b","name":"Bad","date":"2026-01-01","exercises":"oops"},
			"not even an object"
		]}`)
		result, err := portability.ImportJSON(payload, uid)
		require.NoError(t, err)
		require.Len(t, result.Workouts, 1)
		assert.Equal(t, "Good", result.Workouts[0].Name)
		assert.Equal(t, 2, result.Skipped)
	})
}

func TestExportCSV(t *testing.T) {
	uid := uuid.New()
	var buf bytes.Buffer
	require.NoError(t, portability.ExportCSV(&buf, sampleWorkouts(uid)))
	raw := buf.String()

	// header + one row per set, the empty workout adds nothing
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Workout Name,Exercise,Set Number,Weight,Reps,RPE,Personal Record,Notes", lines[0])
	assert.Equal(t, `2026-02-10,"Push Day","Bench Press",1,60,10,,No,"paused reps"`, lines[1])
	assert.Equal(t, `2026-02-10,"Push Day","Bench Press",2,80,5,9,Yes,"paused reps"`, lines[2])

	rows, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2026-02-10", "Push Day", "Bench Press", "1", "60", "10", "", "No", "paused reps"}, rows[1])
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	workouts := []entity.Workout{{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   `Leg "Day"`,
		Date:   "2026-03-01",
		Exercises: []entity.WorkoutExercise{{
			ID:   uuid.New(),
			Name: "Squat",
			Sets: []entity.Set{{ID: uuid.New(), Reps: 5, Weight: 100}},
		}},
	}}
	var buf bytes.Buffer
	require.NoError(t, portability.ExportCSV(&buf, workouts))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2026-03-01,"Leg ""Day""","Squat",1,100,5,,No,""`, lines[1])

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `Leg "Day"`, rows[1][1])
}

func TestExportXLSX(t *testing.T) {
	uid := uuid.New()
	f, err := portability.ExportXLSX(sampleWorkouts(uid))
	require.NoError(t, err)
	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	name, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", name)

	pr, err := f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "Yes", pr)
}

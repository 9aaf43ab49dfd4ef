package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/repository"
	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type WorkoutService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutService{
		repo: workoutsRepo,
	}
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func buildExercises(inputs []WorkoutExerciseInput) []entity.WorkoutExercise {
	exercises := make([]entity.WorkoutExercise, 0, len(inputs))
	for i := range inputs {
		in := &inputs[i]
		ex := entity.WorkoutExercise{
			ID:           uuid.New(),
			Name:         in.Name,
			MuscleGroups: in.MuscleGroups,
			Notes:        in.Notes,
			Sets:         make([]entity.Set, 0, len(in.Sets)),
		}
		for _, setIn := range in.Sets {
			ex.Sets = append(ex.Sets, entity.Set{
				ID:               uuid.New(),
				Reps:             setIn.Reps,
				Weight:           setIn.Weight,
				RPE:              setIn.RPE,
				RestTime:         setIn.RestTime,
				IsPersonalRecord: setIn.IsPersonalRecord,
			})
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

func (ws *WorkoutService) CreateWorkout(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.Workout, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	w := entity.Workout{
		ID:        uuid.New(),
		UserID:    uid,
		Name:      req.Name,
		Date:      req.Date,
		Duration:  req.Duration,
		Notes:     req.Notes,
		Completed: req.Completed,
		Exercises: buildExercises(req.Exercises),
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutService) GetWorkout(ctx context.Context, workoutID, userID uuid.UUID) (*entity.Workout, error) {
	workout, err := ws.repo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if workout.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return workout, nil
}

func (ws *WorkoutService) GetUserWorkouts(ctx context.Context, uid uuid.UUID) ([]entity.Workout, error) {
	workouts, err := ws.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ws *WorkoutService) UpdateWorkout(ctx context.Context, workoutID, userID uuid.UUID, req *UpdateWorkoutRequest) (*entity.Workout, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	workout, err := ws.GetWorkout(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		workout.Name = *req.Name
	}
	if req.Date != nil {
		workout.Date = *req.Date
	}
	if req.Duration != nil {
		workout.Duration = req.Duration
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}
	if req.Completed != nil {
		workout.Completed = *req.Completed
	}
	if req.Exercises != nil {
		workout.Exercises = buildExercises(*req.Exercises)
	}
	err = ws.repo.Update(ctx, workout)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutService) DeleteWorkout(ctx context.Context, workoutID, userID uuid.UUID) error {
	_, err := ws.GetWorkout(ctx, workoutID, userID)
	if err != nil {
		return err
	}
	err = ws.repo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) ImportWorkouts(ctx context.Context, uid uuid.UUID, workouts []entity.Workout) (int, error) {
	created := 0
	for i := range workouts {
		w := workouts[i]
		w.UserID = uid
		if _, err := ws.repo.Create(ctx, &w); err != nil {
			if errors.Is(err, errorvalues.ErrOwnerNotFound) {
				return created, errorvalues.ErrUserNotFound
			}
			return created, errors.New("workouts repository error: " + err.Error())
		}
		created++
	}
	return created, nil
}

func (ws *WorkoutService) GetProgress(ctx context.Context, uid uuid.UUID, now time.Time) (*ProgressReport, error) {
	workouts, err := ws.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	records := stats.PersonalRecords(workouts)
	stats.SortRecordsByDateDesc(records)
	return &ProgressReport{
		Summary:         stats.SummarizeCollection(workouts),
		ThisWeek:        stats.WindowedCount(workouts, now, 7),
		ThisMonth:       stats.WindowedCount(workouts, now, 30),
		PersonalRecords: records,
	}, nil
}

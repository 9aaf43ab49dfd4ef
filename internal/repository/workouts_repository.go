package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	if workout == nil {
		return uuid.UUID{}, errors.New("workout is nil")
	}
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("begin tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `INSERT INTO workouts (id, user_id, name, date, duration, notes, completed) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		workout.ID, workout.UserID, workout.Name, workout.Date, workout.Duration, workout.Notes, workout.Completed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating workout db error: " + err.Error())
	}
	if err = insertExercises(ctx, tx, workout); err != nil {
		return uuid.UUID{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("commit tx error: " + err.Error())
	}
	return workout.ID, nil
}

func insertExercises(ctx context.Context, tx pgx.Tx, workout *entity.Workout) error {
	for pos := range workout.Exercises {
		ex := &workout.Exercises[pos]
		_, err := tx.Exec(ctx, `INSERT INTO workout_exercises (id, workout_id, position, name, muscle_groups, notes) VALUES ($1, $2, $3, $4, $5, $6);`,
			ex.ID, workout.ID, pos, ex.Name, ex.MuscleGroups, ex.Notes,
		)
		if err != nil {
			return errors.New("creating workout exercise db error: " + err.Error())
		}
		for spos := range ex.Sets {
			set := &ex.Sets[spos]
			_, err = tx.Exec(ctx, `INSERT INTO sets (id, exercise_id, position, reps, weight, rpe, rest_time, is_personal_record) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
				set.ID, ex.ID, spos, set.Reps, set.Weight, set.RPE, set.RestTime, set.IsPersonalRecord,
			)
			if err != nil {
				return errors.New("creating set db error: " + err.Error())
			}
		}
	}
	return nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	workout.ID = id
	row := wr.conn.QueryRow(ctx, `SELECT user_id, name, date, duration, notes, completed, created_at, updated_at FROM workouts WHERE id = $1;`, id)
	if err := row.Scan(&workout.UserID, &workout.Name, &workout.Date, &workout.Duration, &workout.Notes, &workout.Completed, &workout.CreatedAt, &workout.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout by id error: " + err.Error())
	}
	exercises, err := wr.loadExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	workout.Exercises = exercises
	return &workout, nil
}

func (wr *WorkoutsRepository) loadExercises(ctx context.Context, workoutID uuid.UUID) ([]entity.WorkoutExercise, error) {
	exercises := make([]entity.WorkoutExercise, 0)
	rows, err := wr.conn.Query(ctx, `SELECT id, name, muscle_groups, notes FROM workout_exercises WHERE workout_id = $1 ORDER BY position;`, workoutID)
	if err != nil {
		return nil, errors.New("getting workout exercises error: " + err.Error())
	}
	defer rows.Close()
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var ex entity.WorkoutExercise
		if err = rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroups, &ex.Notes); err != nil {
			return nil, errors.New("unmarshalling workout exercise error: " + err.Error())
		}
		ex.Sets = make([]entity.Set, 0)
		index[ex.ID] = len(exercises)
		exercises = append(exercises, ex)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning exercises: " + rows.Err().Error())
	}
	setRows, err := wr.conn.Query(ctx, `SELECT s.exercise_id, s.id, s.reps, s.weight, s.rpe, s.rest_time, s.is_personal_record
		FROM sets s JOIN workout_exercises e ON s.exercise_id = e.id WHERE e.workout_id = $1 ORDER BY e.position, s.position;`, workoutID)
	if err != nil {
		return nil, errors.New("getting sets error: " + err.Error())
	}
	defer setRows.Close()
	for setRows.Next() {
		var exID uuid.UUID
		var set entity.Set
		if err = setRows.Scan(&exID, &set.ID, &set.Reps, &set.Weight, &set.RPE, &set.RestTime, &set.IsPersonalRecord); err != nil {
			return nil, errors.New("unmarshalling set error: " + err.Error())
		}
		if i, ok := index[exID]; ok {
			exercises[i].Sets = append(exercises[i].Sets, set)
		}
	}
	if setRows.Err() != nil {
		return nil, errors.New("unexpected error after scanning sets: " + setRows.Err().Error())
	}
	return exercises, nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Workout, error) {
	ids := make([]uuid.UUID, 0)
	rows, err := wr.conn.Query(ctx, `SELECT id FROM workouts WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting workouts by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling workout id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	workouts := make([]entity.Workout, 0, len(ids))
	for _, id := range ids {
		w, err := wr.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	return workouts, nil
}

func (wr *WorkoutsRepository) Update(ctx context.Context, workout *entity.Workout) error {
	if workout == nil {
		return errors.New("workout is nil")
	}
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("begin tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx, `UPDATE workouts SET name = $1, date = $2, duration = $3, notes = $4, completed = $5, updated_at = NOW() WHERE id = $6;`,
		workout.Name, workout.Date, workout.Duration, workout.Notes, workout.Completed, workout.ID,
	)
	if err != nil {
		return errors.New("error updating workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	// Exercises and sets are replaced wholesale, they have no lifecycle
	// outside their workout.
	_, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1;`, workout.ID)
	if err != nil {
		return errors.New("error clearing workout exercises: " + err.Error())
	}
	if err = insertExercises(ctx, tx, workout); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("commit tx error: " + err.Error())
	}
	return nil
}

func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// ExercisesRepository serves the read-only exercise catalog.
type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) List(ctx context.Context) ([]entity.Exercise, error) {
	exercises := make([]entity.Exercise, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, name, category, level, primary_muscles, secondary_muscles, equipment, force, mechanic, instructions, tips, aliases, description
		FROM exercises ORDER BY name;`)
	if err != nil {
		return nil, errors.New("getting exercise catalog error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var ex entity.Exercise
		err = rows.Scan(&ex.ID, &ex.Name, &ex.Category, &ex.Level, &ex.PrimaryMuscles, &ex.SecondaryMuscles,
			&ex.Equipment, &ex.Force, &ex.Mechanic, &ex.Instructions, &ex.Tips, &ex.Aliases, &ex.Description)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, ex)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) Seed(ctx context.Context, exercises []entity.Exercise) error {
	for i := range exercises {
		ex := &exercises[i]
		_, err := er.conn.Exec(ctx, `INSERT INTO exercises (id, name, category, level, primary_muscles, secondary_muscles, equipment, force, mechanic, instructions, tips, aliases, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) ON CONFLICT (id) DO NOTHING;`,
			ex.ID, ex.Name, ex.Category, ex.Level, ex.PrimaryMuscles, ex.SecondaryMuscles,
			ex.Equipment, ex.Force, ex.Mechanic, ex.Instructions, ex.Tips, ex.Aliases, ex.Description,
		)
		if err != nil {
			return errors.New("seeding exercise catalog error: " + err.Error())
		}
	}
	return nil
}

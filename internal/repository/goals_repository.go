package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.NutritionGoals, error) {
	var goals entity.NutritionGoals
	goals.UserID = uid
	row := gr.conn.QueryRow(ctx, `SELECT calories, protein, carbs, fat FROM nutrition_goals WHERE user_id = $1;`, uid)
	if err := row.Scan(&goals.Calories, &goals.Protein, &goals.Carbs, &goals.Fat); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalsNotFound
		}
		return nil, errors.New("getting nutrition goals error: " + err.Error())
	}
	return &goals, nil
}

func (gr *GoalsRepository) Upsert(ctx context.Context, goals *entity.NutritionGoals) error {
	if goals == nil {
		return errors.New("goals is nil")
	}
	_, err := gr.conn.Exec(ctx, `INSERT INTO nutrition_goals (user_id, calories, protein, carbs, fat) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET calories = $2, protein = $3, carbs = $4, fat = $5;`,
		goals.UserID, goals.Calories, goals.Protein, goals.Carbs, goals.Fat,
	)
	if err != nil {
		return errors.New("upserting nutrition goals db error: " + err.Error())
	}
	return nil
}

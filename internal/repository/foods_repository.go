package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// FoodsRepository serves the read-only food catalog.
type FoodsRepository struct {
	conn PgConnection
}

func NewFoodsRepo(cfg DBConfig) *FoodsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for foodsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FoodsRepository{
		conn: pool,
	}
}

func NewFoodsRepoWithConn(conn PgConnection) *FoodsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodsRepo: " + err.Error())
	}
	return &FoodsRepository{
		conn: conn,
	}
}

func (fr *FoodsRepository) List(ctx context.Context) ([]entity.Food, error) {
	foods := make([]entity.Food, 0)
	rows, err := fr.conn.Query(ctx, `SELECT id, name, calories, protein, carbs, fat, serving FROM foods ORDER BY name;`)
	if err != nil {
		return nil, errors.New("getting food catalog error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var f entity.Food
		if err = rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Serving); err != nil {
			return nil, errors.New("unmarshalling food error: " + err.Error())
		}
		foods = append(foods, f)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return foods, nil
}

func (fr *FoodsRepository) GetByID(ctx context.Context, id string) (*entity.Food, error) {
	var f entity.Food
	f.ID = id
	row := fr.conn.QueryRow(ctx, `SELECT name, calories, protein, carbs, fat, serving FROM foods WHERE id = $1;`, id)
	if err := row.Scan(&f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Serving); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFoodNotFound
		}
		return nil, errors.New("getting food by id error: " + err.Error())
	}
	return &f, nil
}

func (fr *FoodsRepository) Seed(ctx context.Context, foods []entity.Food) error {
	for i := range foods {
		f := &foods[i]
		_, err := fr.conn.Exec(ctx, `INSERT INTO foods (id, name, calories, protein, carbs, fat, serving)
			VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING;`,
			f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.Serving,
		)
		if err != nil {
			return errors.New("seeding food catalog error: " + err.Error())
		}
	}
	return nil
}

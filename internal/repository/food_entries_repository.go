package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/cleanup"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type FoodEntriesRepository struct {
	conn PgConnection
}

func NewFoodEntriesRepo(cfg DBConfig) *FoodEntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for foodEntriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodEntriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FoodEntriesRepository{
		conn: pool,
	}
}

func NewFoodEntriesRepoWithConn(conn PgConnection) *FoodEntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodEntriesRepo: " + err.Error())
	}
	return &FoodEntriesRepository{
		conn: conn,
	}
}

func (fer *FoodEntriesRepository) Create(ctx context.Context, entry *entity.FoodEntry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	_, err := fer.conn.Exec(ctx, `INSERT INTO food_entries (id, user_id, food_id, food_name, servings, calories, protein, carbs, fat, date, meal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		entry.ID, entry.UserID, entry.FoodID, entry.FoodName, entry.Servings,
		entry.Calories, entry.Protein, entry.Carbs, entry.Fat, entry.Date, entry.Meal,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("creating food entry db error: " + err.Error())
	}
	return nil
}

func (fer *FoodEntriesRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := fer.conn.Exec(ctx, `DELETE FROM food_entries WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("error deleting food entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (fer *FoodEntriesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.FoodEntry, error) {
	return fer.queryEntries(ctx, `SELECT id, user_id, food_id, food_name, servings, calories, protein, carbs, fat, date, meal, created_at
		FROM food_entries WHERE user_id = $1 ORDER BY date DESC, created_at;`, uid)
}

func (fer *FoodEntriesRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.FoodEntry, error) {
	return fer.queryEntries(ctx, `SELECT id, user_id, food_id, food_name, servings, calories, protein, carbs, fat, date, meal, created_at
		FROM food_entries WHERE user_id = $1 AND date = $2 ORDER BY created_at;`, uid, date)
}

func (fer *FoodEntriesRepository) queryEntries(ctx context.Context, query string, args ...any) ([]entity.FoodEntry, error) {
	entries := make([]entity.FoodEntry, 0)
	rows, err := fer.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting food entries error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.FoodEntry
		err = rows.Scan(&e.ID, &e.UserID, &e.FoodID, &e.FoodName, &e.Servings,
			&e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Date, &e.Meal, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling food entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ExercisesRepositoryI interface {
	// Lists the whole reference catalog, ordered by name
	List(ctx context.Context) ([]entity.Exercise, error)
	// Loads catalog entries, skipping ones already present
	Seed(ctx context.Context, exercises []entity.Exercise) error
}

type WorkoutsRepositoryI interface {
	// Stores a workout with its exercises and sets. IDs are assigned by the caller
	Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error)
	// Loads one workout fully (exercises and sets in order)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	// Lists workouts owned by user, most recent date first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Workout, error)
	// Replaces the stored workout with the given one (ID is necessary)
	Update(ctx context.Context, workout *entity.Workout) error
	// Deletes workout with id, cascading to its exercises and sets
	Delete(ctx context.Context, id uuid.UUID) error
}

type FoodsRepositoryI interface {
	// Lists the whole food catalog, ordered by name
	List(ctx context.Context) ([]entity.Food, error)
	// Searches food with given id
	GetByID(ctx context.Context, id string) (*entity.Food, error)
	// Loads catalog entries, skipping ones already present
	Seed(ctx context.Context, foods []entity.Food) error
}

type FoodEntriesRepositoryI interface {
	// Stores a new log entry. Entries are never updated in place
	Create(ctx context.Context, entry *entity.FoodEntry) error
	// Deletes entry with id if it belongs to uid
	Delete(ctx context.Context, id, uid uuid.UUID) error
	// Lists all entries of a user
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.FoodEntry, error)
	// Lists entries of a user for one exact calendar day
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.FoodEntry, error)
}

type GoalsRepositoryI interface {
	// Returns the user's goals or ErrGoalsNotFound before the first edit
	Get(ctx context.Context, uid uuid.UUID) (*entity.NutritionGoals, error)
	// Creates or overwrites the user's goals
	Upsert(ctx context.Context, goals *entity.NutritionGoals) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

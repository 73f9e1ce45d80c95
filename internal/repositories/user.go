package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/models"
)

// UserReadRepository reads users from Postgres.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or (nil, nil)
// when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := pick(ctx, r.db).GetContext(ctx, &user, query, username)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository writes users to Postgres.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the server-assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{username, email, passwordHash}

	var id int64
	err := pick(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", []any{username, email},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

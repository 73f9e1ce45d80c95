package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/models"
)

// MemoReadRepository reads memos from Postgres. All lookups are owner
// constrained: a memo another user owns behaves as if it does not exist.
type MemoReadRepository struct {
	db *sqlx.DB
}

func NewMemoReadRepository(db *sqlx.DB) *MemoReadRepository {
	return &MemoReadRepository{db: db}
}

// Get returns the memo with the given id owned by ownerID, or
// (nil, nil) when no such memo exists.
func (r *MemoReadRepository) Get(ctx context.Context, memoID, ownerID int64) (*models.MemoDB, error) {
	const query = `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM memos
		WHERE id = $1 AND owner_id = $2
	`

	var memo models.MemoDB
	err := pick(ctx, r.db).GetContext(ctx, &memo, query, memoID, ownerID)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", []any{memoID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &memo, nil
}

// ListByOwner returns all memos owned by ownerID in primary-key order.
func (r *MemoReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.MemoDB, error) {
	const query = `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM memos
		WHERE owner_id = $1
		ORDER BY id
	`

	memos := make([]models.MemoDB, 0)
	err := pick(ctx, r.db).SelectContext(ctx, &memos, query, ownerID)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", []any{ownerID},
		"result", len(memos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return memos, nil
}

// MemoWriteRepository writes memos to Postgres.
type MemoWriteRepository struct {
	db *sqlx.DB
}

func NewMemoWriteRepository(db *sqlx.DB) *MemoWriteRepository {
	return &MemoWriteRepository{db: db}
}

// Save inserts a new memo and returns the server-assigned id.
func (r *MemoWriteRepository) Save(ctx context.Context, ownerID int64, title, content string) (int64, error) {
	const query = `
		INSERT INTO memos (owner_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{ownerID, title, content}

	var id int64
	err := pick(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update persists the memo's title and content in place.
func (r *MemoWriteRepository) Update(ctx context.Context, memo *models.MemoDB) error {
	const query = `
		UPDATE memos
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3 AND owner_id = $4
	`
	args := []any{memo.Title, memo.Content, memo.ID, memo.OwnerID}

	_, err := pick(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes the memo and reports how many rows were affected.
func (r *MemoWriteRepository) Delete(ctx context.Context, memoID, ownerID int64) (int64, error) {
	const query = `
		DELETE FROM memos
		WHERE id = $1 AND owner_id = $2
	`
	args := []any{memoID, ownerID}

	res, err := pick(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", squish(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

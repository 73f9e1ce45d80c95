package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/models"
)

// ErrMemoDoesNotExist covers both a missing memo and a memo owned by
// another user; callers cannot tell the two apart.
var ErrMemoDoesNotExist = errors.New("memo does not exist")

// MemoReader defines read-only operations for memos.
type MemoReader interface {
	Get(ctx context.Context, memoID, ownerID int64) (*models.MemoDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.MemoDB, error)
}

// MemoWriter defines write operations for memos.
type MemoWriter interface {
	Save(ctx context.Context, ownerID int64, title, content string) (int64, error)
	Update(ctx context.Context, memo *models.MemoDB) error
	Delete(ctx context.Context, memoID, ownerID int64) (int64, error)
}

// MemoService implements memo CRUD scoped to the authenticated user.
// Every call resolves the session's username to a user row first; a
// stale session whose user is gone fails with ErrUserDoesNotExist.
type MemoService struct {
	users  UserReader
	reader MemoReader
	writer MemoWriter
}

// NewMemoService creates a new MemoService instance.
func NewMemoService(users UserReader, reader MemoReader, writer MemoWriter) *MemoService {
	return &MemoService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

func (svc *MemoService) resolveOwner(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve memo owner", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("session references unknown user", "username", username)
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Create persists a new memo owned by the session's user.
func (svc *MemoService) Create(ctx context.Context, username, title, content string) (*models.MemoDB, error) {
	owner, err := svc.resolveOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	id, err := svc.writer.Save(ctx, owner.ID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save memo", "err", err)
		return nil, err
	}

	return &models.MemoDB{
		ID:      id,
		OwnerID: owner.ID,
		Title:   title,
		Content: content,
	}, nil
}

// List returns the memos owned by the session's user in insertion order.
func (svc *MemoService) List(ctx context.Context, username string) ([]models.MemoDB, error) {
	owner, err := svc.resolveOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	memos, err := svc.reader.ListByOwner(ctx, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to list memos", "err", err)
		return nil, err
	}
	return memos, nil
}

// Update applies a merge-patch to the memo: nil fields stay untouched.
// An empty patch persists and returns the memo unchanged.
func (svc *MemoService) Update(ctx context.Context, username string, memoID int64, title, content *string) (*models.MemoDB, error) {
	owner, err := svc.resolveOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	memo, err := svc.reader.Get(ctx, memoID, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to get memo", "err", err)
		return nil, err
	}
	if memo == nil {
		return nil, ErrMemoDoesNotExist
	}

	if title != nil {
		memo.Title = *title
	}
	if content != nil {
		memo.Content = *content
	}

	if err := svc.writer.Update(ctx, memo); err != nil {
		logger.Log.Errorw("failed to update memo", "err", err)
		return nil, err
	}

	return memo, nil
}

// Delete removes the memo owned by the session's user.
func (svc *MemoService) Delete(ctx context.Context, username string, memoID int64) error {
	owner, err := svc.resolveOwner(ctx, username)
	if err != nil {
		return err
	}

	affected, err := svc.writer.Delete(ctx, memoID, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete memo", "err", err)
		return err
	}
	if affected == 0 {
		return ErrMemoDoesNotExist
	}
	return nil
}

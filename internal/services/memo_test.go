package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/memo-app/internal/models"
	"github.com/sbilibin2017/memo-app/internal/services"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMemoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		saveID    int64
		saveErr   error
		wantErr   error
	}{
		{
			name:     "successful create",
			username: "alice",
			user:     &models.UserDB{ID: 7, Username: "alice"},
			saveID:   1,
		},
		{
			name:     "stale session user gone",
			username: "ghost",
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:      "owner lookup error",
			username:  "alice",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "save error",
			username: "alice",
			user:     &models.UserDB{ID: 7, Username: "alice"},
			saveErr:  errors.New("save error"),
			wantErr:  errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockMemoWriter(ctrl)

			mockUsers.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.user.ID, "T1", "C1").
					Return(tt.saveID, tt.saveErr)
			}

			svc := services.NewMemoService(mockUsers, nil, mockWriter)

			memo, err := svc.Create(context.Background(), tt.username, "T1", "C1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.saveID, memo.ID)
			assert.Equal(t, tt.user.ID, memo.OwnerID)
			assert.Equal(t, "T1", memo.Title)
			assert.Equal(t, "C1", memo.Content)
		})
	}
}

// Listing is scoped to the caller's own memos. The upstream revisions
// disagreed on this; the owner filter is the behavior this service
// guarantees, so the expectation below pins it.
func TestMemoService_ListScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockMemoReader(ctrl)

	mockUsers.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{ID: 7, Username: "alice"}, nil)

	owned := []models.MemoDB{
		{ID: 1, OwnerID: 7, Title: "T1", Content: "C1"},
		{ID: 3, OwnerID: 7, Title: "T3", Content: "C3"},
	}
	mockReader.EXPECT().
		ListByOwner(gomock.Any(), int64(7)).
		Return(owned, nil)

	svc := services.NewMemoService(mockUsers, mockReader, nil)

	memos, err := svc.List(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, owned, memos)
}

func TestMemoService_List_StaleSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockUsers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	svc := services.NewMemoService(mockUsers, nil, nil)

	_, err := svc.List(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
}

func TestMemoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &models.UserDB{ID: 7, Username: "alice"}

	tests := []struct {
		name        string
		memo        *models.MemoDB
		title       *string
		content     *string
		wantTitle   string
		wantContent string
		wantErr     error
	}{
		{
			name:        "patch content only",
			memo:        &models.MemoDB{ID: 1, OwnerID: 7, Title: "T1", Content: "C1"},
			content:     strPtr("C2"),
			wantTitle:   "T1",
			wantContent: "C2",
		},
		{
			name:        "patch title only",
			memo:        &models.MemoDB{ID: 1, OwnerID: 7, Title: "T1", Content: "C1"},
			title:       strPtr("T2"),
			wantTitle:   "T2",
			wantContent: "C1",
		},
		{
			name:        "empty patch leaves memo unchanged",
			memo:        &models.MemoDB{ID: 1, OwnerID: 7, Title: "T1", Content: "C1"},
			wantTitle:   "T1",
			wantContent: "C1",
		},
		{
			name:    "memo not found",
			memo:    nil,
			content: strPtr("C2"),
			wantErr: services.ErrMemoDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockReader := services.NewMockMemoReader(ctrl)
			mockWriter := services.NewMockMemoWriter(ctrl)

			mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(owner, nil)
			mockReader.EXPECT().Get(gomock.Any(), int64(1), int64(7)).Return(tt.memo, nil)

			if tt.memo != nil {
				mockWriter.EXPECT().Update(gomock.Any(), tt.memo).Return(nil)
			}

			svc := services.NewMemoService(mockUsers, mockReader, mockWriter)

			memo, err := svc.Update(context.Background(), "alice", 1, tt.title, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTitle, memo.Title)
			assert.Equal(t, tt.wantContent, memo.Content)
		})
	}
}

func TestMemoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &models.UserDB{ID: 7, Username: "alice"}

	tests := []struct {
		name      string
		affected  int64
		deleteErr error
		wantErr   error
	}{
		{
			name:     "successful delete",
			affected: 1,
		},
		{
			name:     "memo not found",
			affected: 0,
			wantErr:  services.ErrMemoDoesNotExist,
		},
		{
			name:      "delete error",
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockMemoWriter(ctrl)

			mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(owner, nil)
			mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(tt.affected, tt.deleteErr)

			svc := services.NewMemoService(mockUsers, nil, mockWriter)

			err := svc.Delete(context.Background(), "alice", 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Mirrors the full happy path: create, list, patch, delete, list again.
func TestMemoService_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockMemoReader(ctrl)
	mockWriter := services.NewMockMemoWriter(ctrl)

	owner := &models.UserDB{ID: 1, Username: "alice"}
	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(owner, nil).AnyTimes()

	svc := services.NewMemoService(mockUsers, mockReader, mockWriter)
	ctx := context.Background()

	mockWriter.EXPECT().Save(gomock.Any(), int64(1), "T1", "C1").Return(int64(1), nil)
	created, err := svc.Create(ctx, "alice", "T1", "C1")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)

	mockReader.EXPECT().ListByOwner(gomock.Any(), int64(1)).
		Return([]models.MemoDB{*created}, nil)
	memos, err := svc.List(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, memos, 1)

	mockReader.EXPECT().Get(gomock.Any(), int64(1), int64(1)).
		Return(&models.MemoDB{ID: 1, OwnerID: 1, Title: "T1", Content: "C1"}, nil)
	mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	updated, err := svc.Update(ctx, "alice", 1, nil, strPtr("C2"))
	assert.NoError(t, err)
	assert.Equal(t, "T1", updated.Title)
	assert.Equal(t, "C2", updated.Content)

	mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(int64(1), nil)
	assert.NoError(t, svc.Delete(ctx, "alice", 1))

	mockReader.EXPECT().ListByOwner(gomock.Any(), int64(1)).
		Return([]models.MemoDB{}, nil)
	memos, err = svc.List(ctx, "alice")
	assert.NoError(t, err)
	assert.Empty(t, memos)
}

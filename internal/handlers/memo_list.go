package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/middlewares"
	"github.com/sbilibin2017/memo-app/internal/models"
)

// MemoLister defines the interface that the memo service must implement.
type MemoLister interface {
	List(ctx context.Context, username string) ([]models.MemoDB, error)
}

// NewMemoListHandler returns an HTTP handler that lists the memos owned
// by the session's user, in insertion order.
// @Summary List memos
// @Description Returns the memos owned by the session's user
// @Tags memos
// @Produce json
// @Success 200 {array} handlers.MemoResponse "Memos"
// @Failure 401 {object} handlers.MemoErrorResponse "Not authorized"
// @Failure 404 {object} handlers.MemoErrorResponse "User not found"
// @Router /memos/ [get]
// @Security SessionCookie
func NewMemoListHandler(svc MemoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Not authorized"})
			return
		}

		memos, err := svc.List(r.Context(), username)
		if err != nil {
			writeMemoError(w, err)
			return
		}

		resp := make([]MemoResponse, 0, len(memos))
		for _, memo := range memos {
			resp = append(resp, MemoResponse{
				ID:      memo.ID,
				Title:   memo.Title,
				Content: memo.Content,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

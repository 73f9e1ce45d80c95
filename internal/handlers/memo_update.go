package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/memo-app/internal/middlewares"
	"github.com/sbilibin2017/memo-app/internal/models"
)

// MemoUpdater defines the interface that the memo service must implement.
type MemoUpdater interface {
	Update(ctx context.Context, username string, memoID int64, title, content *string) (*models.MemoDB, error)
}

// MemoUpdateRequest represents the JSON body for a merge-patch memo
// update. Absent fields are left untouched.
// swagger:model MemoUpdateRequest
type MemoUpdateRequest struct {
	// Title
	// default: Shopping list
	Title *string `json:"title,omitempty"`

	// Content
	// default: milk, eggs, bread
	Content *string `json:"content,omitempty"`
}

// NewMemoUpdateHandler returns an HTTP handler for memo updates.
// @Summary Update a memo
// @Description Applies a merge-patch to the memo: only supplied fields change
// @Tags memos
// @Accept json
// @Produce json
// @Param id path int true "Memo id"
// @Param memoUpdateRequest body handlers.MemoUpdateRequest true "Memo update request"
// @Success 200 {object} handlers.MemoResponse "Updated memo"
// @Failure 400 {object} handlers.MemoErrorResponse "Invalid id or body"
// @Failure 401 {object} handlers.MemoErrorResponse "Not authorized"
// @Failure 404 {object} handlers.MemoErrorResponse "Memo not found"
// @Router /memos/{id} [put]
// @Security SessionCookie
func NewMemoUpdateHandler(svc MemoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Not authorized"})
			return
		}

		memoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Invalid memo id"})
			return
		}

		var req MemoUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Invalid request body"})
			return
		}

		memo, err := svc.Update(r.Context(), username, memoID, req.Title, req.Content)
		if err != nil {
			writeMemoError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MemoResponse{
			ID:      memo.ID,
			Title:   memo.Title,
			Content: memo.Content,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/memo-app/internal/middlewares"
)

// MemoDeleter defines the interface that the memo service must implement.
type MemoDeleter interface {
	Delete(ctx context.Context, username string, memoID int64) error
}

// MemoDeleteResponse represents a successful delete response
// swagger:model MemoDeleteResponse
type MemoDeleteResponse struct {
	// Success message
	// default: Memo deleted
	Message string `json:"message"`
}

// NewMemoDeleteHandler returns an HTTP handler for memo deletion.
// @Summary Delete a memo
// @Description Removes the memo owned by the session's user
// @Tags memos
// @Produce json
// @Param id path int true "Memo id"
// @Success 200 {object} handlers.MemoDeleteResponse "Memo deleted"
// @Failure 400 {object} handlers.MemoErrorResponse "Invalid id"
// @Failure 401 {object} handlers.MemoErrorResponse "Not authorized"
// @Failure 404 {object} handlers.MemoErrorResponse "Memo not found"
// @Router /memos/{id} [delete]
// @Security SessionCookie
func NewMemoDeleteHandler(svc MemoDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), username, memoID); err != nil {
			writeMemoError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MemoDeleteResponse{
			Message: "Memo deleted",
		})
	}
}

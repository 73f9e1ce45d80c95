package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/middlewares"
	"github.com/sbilibin2017/memo-app/internal/models"
	"github.com/sbilibin2017/memo-app/internal/services"
)

// MemoCreator defines the interface that the memo service must implement.
type MemoCreator interface {
	Create(ctx context.Context, username, title, content string) (*models.MemoDB, error)
}

// MemoCreateRequest represents the JSON body for memo creation
// swagger:model MemoCreateRequest
type MemoCreateRequest struct {
	// Title
	// required: true
	// default: Shopping list
	Title string `json:"title"`

	// Content
	// required: true
	// default: milk, eggs
	Content string `json:"content"`
}

// MemoResponse represents a memo in API responses
// swagger:model MemoResponse
type MemoResponse struct {
	// Memo id
	// default: 1
	ID int64 `json:"id"`

	// Title
	// default: Shopping list
	Title string `json:"title"`

	// Content
	// default: milk, eggs
	Content string `json:"content"`
}

// MemoErrorResponse represents an error response for memo operations
// swagger:model MemoErrorResponse
type MemoErrorResponse struct {
	// Error message
	// default: Memo not found
	Error string `json:"error"`
}

// NewMemoCreateHandler returns an HTTP handler for memo creation.
// @Summary Create a memo
// @Description Persists a new memo owned by the session's user
// @Tags memos
// @Accept json
// @Produce json
// @Param memoCreateRequest body handlers.MemoCreateRequest true "Memo create request"
// @Success 201 {object} handlers.MemoResponse "Created memo"
// @Failure 401 {object} handlers.MemoErrorResponse "Not authorized"
// @Failure 404 {object} handlers.MemoErrorResponse "User not found"
// @Router /memos/ [post]
// @Security SessionCookie
func NewMemoCreateHandler(svc MemoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Not authorized"})
			return
		}

		var req MemoCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Invalid request body"})
			return
		}

		memo, err := svc.Create(r.Context(), username, req.Title, req.Content)
		if err != nil {
			writeMemoError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MemoResponse{
			ID:      memo.ID,
			Title:   memo.Title,
			Content: memo.Content,
		})
	}
}

// writeMemoError maps memo service errors to HTTP responses.
func writeMemoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(MemoErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrMemoDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Memo not found"})
	default:
		logger.Log.Errorw("memo operation failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(MemoErrorResponse{Error: "Internal server error"})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (int64, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Server-assigned user id
	// default: 1
	UserID int64 `json:"user_id"`

	// Success message
	// default: Account created successfully
	Message string `json:"message"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up a new user
// @Description Creates a new user account with a unique username. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.SignupErrorResponse "Username already exists / invalid request"
// @Failure 500 {object} handlers.SignupErrorResponse "Signup failed"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		userID, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Username already exists",
				})
			default:
				// Persistence details stay out of the response body.
				logger.Log.Errorw("signup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Signup failed, please check the submitted fields",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			UserID:  userID,
			Message: "Account created successfully",
		})
	}
}

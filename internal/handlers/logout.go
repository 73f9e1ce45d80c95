package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/memo-app/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// LogoutTokener extracts the session token and builds the clearing cookie.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ExpiredCookie() *http.Cookie
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out successfully
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. The operation is
// idempotent: requests without a session cookie still succeed and the
// clearing cookie is always sent.
// @Summary User logout
// @Description Revokes the current session and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cleared"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, tokener LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
			if err := svc.Logout(ctx, token); err != nil {
				logger.Log.Errorw("logout failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Internal server error",
				})
				return
			}
		}

		http.SetCookie(w, tokener.ExpiredCookie())
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out successfully",
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/services"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RefreshRequest represents the JSON body for a token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token issued at login
	// required: true
	// example: REFRESH_TOKEN
	Refresh string `json:"refresh"`
}

// RefreshResponse represents a successful token refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	// New access token
	// example: ACCESS_TOKEN
	Access string `json:"access"`
}

// NewRefreshHandler returns an HTTP handler for exchanging a refresh token
// for a new access token.
// @Summary Refresh access token
// @Description Exchange a valid, unexpired refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.RefreshResponse "New access token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired refresh token"
// @Router /token/refresh/ [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRefreshToken):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid or expired refresh token"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RefreshResponse{Access: access})
	}
}

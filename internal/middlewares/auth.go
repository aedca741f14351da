package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/expensio/expense-tracker/internal/jwt"
	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/google/uuid"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// userIDKey is an unexported context key type for the authenticated user id.
type userIDKey struct{}

// SetUserID stores the authenticated user id in the context.
func SetUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext retrieves the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}

// AuthMiddleware validates the bearer access token and injects the caller's
// user id into the request context. Refresh tokens are rejected here; they
// are only good for the refresh endpoint.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				unauthorized(w)
				return
			}
			if claims.TokenType != jwt.TokenTypeAccess {
				logger.Log.Warnw("authorization failed", "err", jwt.ErrWrongTokenType)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserID(ctx, claims.UserID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/middlewares"
	"github.com/expensio/expense-tracker/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

// NewDeleteTransactionHandler returns an HTTP handler permanently deleting an
// owned transaction.
// @Summary Delete a transaction
// @Description Permanently removes a transaction by id if it belongs to the authenticated user.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.MessageResponse "Transaction deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Transaction not found"
// @Router /transactions/{id}/ [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction not found"})
			return
		}

		if err := svc.Delete(ctx, userID, transactionID); err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction not found"})
			default:
				logger.Log.Errorw("failed to delete transaction", "userID", userID, "transactionID", transactionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction deleted successfully"})
	}
}

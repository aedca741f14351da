package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/middlewares"
	"github.com/expensio/expense-tracker/internal/models"
	"github.com/expensio/expense-tracker/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	Get(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error)
}

// GetTransactionResponse wraps a single transaction.
// swagger:model GetTransactionResponse
type GetTransactionResponse struct {
	// Requested transaction
	Data TransactionPayload `json:"data"`
}

// NewGetTransactionHandler returns an HTTP handler fetching one owned transaction.
// Records of other users are reported as not found, identically to absent ids.
// @Summary Get a transaction
// @Description Returns a transaction by id if it belongs to the authenticated user.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.GetTransactionResponse "Transaction returned"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Transaction not found"
// @Router /transactions/{id}/ [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
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
			// A malformed id cannot name any record.
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction not found"})
			return
		}

		txn, err := svc.Get(ctx, userID, transactionID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction not found"})
			default:
				logger.Log.Errorw("failed to get transaction", "userID", userID, "transactionID", transactionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetTransactionResponse{Data: newTransactionPayload(*txn)})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/middlewares"
	"github.com/expensio/expense-tracker/internal/models"
	"github.com/google/uuid"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// ListTransactionsResponse wraps the caller's transactions.
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	// Transactions owned by the caller
	Data []TransactionPayload `json:"data"`
}

// NewListTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List transactions
// @Description Returns all transactions owned by the authenticated user.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions returned"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions/ [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		txns, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Data: newTransactionPayloads(txns)})
	}
}

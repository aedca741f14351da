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

// TransactionUpdater defines the interface that the service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, userID, transactionID uuid.UUID, patch services.TransactionPatch) (*models.TransactionDB, error)
}

// UpdateTransactionRequest represents the JSON body for updating a transaction.
// All fields are required on PUT; PATCH accepts any subset.
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	// Free-text label
	// example: Groceries
	Title *string `json:"title"`

	// Amount magnitude; the stored sign is re-derived from the effective transaction_type
	// example: 42.5
	Amount *float64 `json:"amount"`

	// CREDIT or DEBIT
	// example: CREDIT
	TransactionType *string `json:"transaction_type"`
}

// UpdateTransactionResponse represents a successful update.
// swagger:model UpdateTransactionResponse
type UpdateTransactionResponse struct {
	// Success message
	// example: Transaction updated successfully
	Message string `json:"message"`

	// Updated transaction with normalized amount
	Data TransactionPayload `json:"data"`
}

// NewUpdateTransactionHandler returns an HTTP handler for full updates (PUT).
// Every mutable field must be present.
// @Summary Replace a transaction
// @Description Fully replaces the mutable fields of an owned transaction and re-normalizes the amount sign.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body handlers.UpdateTransactionRequest true "Replacement fields"
// @Success 200 {object} handlers.UpdateTransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Transaction not found"
// @Router /transactions/{id}/ [put]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return updateTransactionHandler(svc, true)
}

// NewPartialUpdateTransactionHandler returns an HTTP handler for partial
// updates (PATCH). Any subset of fields may be supplied; the rest keep their
// stored values and the amount sign is re-derived from the effective type.
// @Summary Partially update a transaction
// @Description Applies the supplied subset of fields to an owned transaction and re-normalizes the amount sign.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body handlers.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateTransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Transaction not found"
// @Router /transactions/{id}/ [patch]
// @Security BearerAuth
func NewPartialUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return updateTransactionHandler(svc, false)
}

func updateTransactionHandler(svc TransactionUpdater, full bool) http.HandlerFunc {
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

		var req UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if full {
			fields := map[string]string{}
			if req.Title == nil {
				fields["title"] = "This field is required"
			}
			if req.Amount == nil {
				fields["amount"] = "This field is required"
			}
			if req.TransactionType == nil {
				fields["transaction_type"] = "This field is required"
			}
			if len(fields) > 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Validation failed", Fields: fields})
				return
			}
		}

		patch := services.TransactionPatch{
			Title:  req.Title,
			Amount: req.Amount,
			Type:   req.TransactionType,
		}

		txn, err := svc.Update(ctx, userID, transactionID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Transaction not found"})
			case errors.Is(err, services.ErrInvalidTransactionType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error:  "Validation failed",
					Fields: map[string]string{"transaction_type": "Must be CREDIT or DEBIT"},
				})
			default:
				logger.Log.Errorw("failed to update transaction", "userID", userID, "transactionID", transactionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateTransactionResponse{
			Message: "Transaction updated successfully",
			Data:    newTransactionPayload(*txn),
		})
	}
}

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
	"github.com/google/uuid"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string, amount float64, transactionType string) (*models.TransactionDB, error)
}

// CreateTransactionRequest represents the JSON body for creating a transaction.
// Pointer fields distinguish absent values from zero values.
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Free-text label
	// required: true
	// example: Coffee
	Title *string `json:"title"`

	// Amount magnitude; the stored sign is derived from transaction_type
	// required: true
	// example: 5
	Amount *float64 `json:"amount"`

	// CREDIT or DEBIT
	// required: true
	// example: DEBIT
	TransactionType *string `json:"transaction_type"`
}

// CreateTransactionResponse represents a successful creation.
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Success message
	// example: Transaction created successfully
	Message string `json:"message"`

	// Created transaction with normalized amount
	Data TransactionPayload `json:"data"`
}

// NewCreateTransactionHandler returns an HTTP handler creating a transaction
// owned by the authenticated user.
// @Summary Create a transaction
// @Description Validates and persists a new transaction. The owner is always the authenticated caller; the stored amount sign is derived from transaction_type.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Transaction to create"
// @Success 200 {object} handlers.CreateTransactionResponse "Transaction created"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions/ [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// A non-numeric amount or malformed JSON lands here.
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

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

		txn, err := svc.Create(ctx, userID, *req.Title, *req.Amount, *req.TransactionType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTransactionType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error:  "Validation failed",
					Fields: map[string]string{"transaction_type": "Must be CREDIT or DEBIT"},
				})
			default:
				logger.Log.Errorw("failed to create transaction", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateTransactionResponse{
			Message: "Transaction created successfully",
			Data:    newTransactionPayload(*txn),
		})
	}
}

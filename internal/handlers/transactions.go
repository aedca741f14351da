package handlers

import (
	"github.com/expensio/expense-tracker/internal/models"
)

// TransactionPayload is the JSON shape of a transaction on the wire.
// swagger:model TransactionPayload
type TransactionPayload struct {
	// Transaction id
	// example: 6f1f9c2e-7b9d-4e7a-9a3c-2d1f0b8e4a55
	ID string `json:"id"`

	// Free-text label
	// example: Coffee
	Title string `json:"title"`

	// Signed amount; sign matches transaction_type
	// example: -5
	Amount float64 `json:"amount"`

	// CREDIT or DEBIT
	// example: DEBIT
	TransactionType string `json:"transaction_type"`

	// Owning user id
	// example: 0d51b7d5-2f4a-4f6e-8a6b-9b1c3d5e7f90
	Owner string `json:"owner"`
}

func newTransactionPayload(txn models.TransactionDB) TransactionPayload {
	return TransactionPayload{
		ID:              txn.TransactionID.String(),
		Title:           txn.Title,
		Amount:          txn.Amount,
		TransactionType: txn.Type,
		Owner:           txn.UserID.String(),
	}
}

func newTransactionPayloads(txns []models.TransactionDB) []TransactionPayload {
	payloads := make([]TransactionPayload, 0, len(txns))
	for _, txn := range txns {
		payloads = append(payloads, newTransactionPayload(txn))
	}
	return payloads
}

// ErrorResponse is the generic error body. Fields carries field-level detail
// for validation failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid request body
	Error string `json:"error"`

	// Per-field validation errors
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is the body of responses that only carry a message.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// example: Transaction not found
	Message string `json:"message"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types. The stored sign of Amount is derived from the type:
// CREDIT keeps the magnitude positive, DEBIT stores it negated.
const (
	TypeCredit = "CREDIT"
	TypeDebit  = "DEBIT"
)

// TransactionDB represents a transaction record in the database.
// Every transaction belongs to exactly one user; UserID is assigned from the
// authenticated caller at creation and never changes.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"id" db:"transaction_id"`                // Primary key
	UserID        uuid.UUID `json:"owner" db:"user_id"`                    // Owning user
	Title         string    `json:"title" db:"title"`                      // Free-text label
	Amount        float64   `json:"amount" db:"amount"`                    // Signed amount, sign matches Type
	Type          string    `json:"transaction_type" db:"transaction_type"` // CREDIT or DEBIT
	CreatedAt     time.Time `json:"-" db:"created_at"`
	UpdatedAt     time.Time `json:"-" db:"updated_at"`
}

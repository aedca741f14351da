package models

// TransactionEvent is published to Kafka after a successful transaction mutation.
type TransactionEvent struct {
	EventID       string  `json:"event_id"`       // EventID is a unique identifier for the event.
	TransactionID string  `json:"transaction_id"` // TransactionID is the id of the affected transaction.
	UserID        string  `json:"user_id"`        // UserID is the identifier of the transaction owner.
	Operation     string  `json:"operation"`      // Operation is "create", "update", or "delete".
	Amount        float64 `json:"amount"`         // Amount is the normalized signed amount.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) of the mutation.
}

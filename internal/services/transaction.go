package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrTransactionNotFound is returned when a transaction is absent or
	// belongs to another user. The two cases are deliberately identical so
	// existence of foreign records never leaks.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when transaction_type is not
	// CREDIT or DEBIT.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// NormalizeAmount derives the stored sign of an amount from the transaction
// type: CREDIT keeps the magnitude positive, DEBIT negates it. Working with
// the magnitude makes repeated normalization idempotent.
func NormalizeAmount(amount float64, transactionType string) float64 {
	magnitude := math.Abs(amount)
	if transactionType == models.TypeDebit {
		return -magnitude
	}
	return magnitude
}

// validTransactionType reports whether t is one of the known types.
func validTransactionType(t string) bool {
	return t == models.TypeCredit || t == models.TypeDebit
}

// TransactionReader defines owner-scoped read operations.
type TransactionReader interface {
	GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// TransactionWriter defines owner-scoped write operations.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) error
	Update(ctx context.Context, txn models.TransactionDB) error
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionPatch carries the fields of a partial update. Nil fields are
// left unchanged; a full replace sets all of them.
type TransactionPatch struct {
	Title  *string
	Amount *float64
	Type   *string
}

// TransactionService implements transaction CRUD with ownership enforcement
// and sign normalization at the write paths.
type TransactionService struct {
	readRepo    TransactionReader
	writeRepo   TransactionWriter
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(readRepo TransactionReader, writeRepo TransactionWriter, kafkaWriter KafkaWriter) *TransactionService {
	return &TransactionService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a transaction lifecycle event to Kafka.
// Failures are logged and never surfaced; events are best effort.
func (s *TransactionService) publishEvent(ctx context.Context, txn models.TransactionDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		TransactionID: txn.TransactionID.String(),
		UserID:        txn.UserID.String(),
		Operation:     operation,
		Amount:        txn.Amount,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.TransactionID, "operation", operation)
	}
}

// List returns all transactions owned by userID.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	txns, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	return txns, nil
}

// Create validates and persists a new transaction owned by userID.
// The owner always comes from the authenticated caller, never the payload.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, title string, amount float64, transactionType string) (*models.TransactionDB, error) {
	if !validTransactionType(transactionType) {
		logger.Log.Warnw("invalid transaction type", "transaction_type", transactionType)
		return nil, ErrInvalidTransactionType
	}

	txn := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Title:         title,
		Amount:        NormalizeAmount(amount, transactionType),
		Type:          transactionType,
	}

	if err := s.writeRepo.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, txn, "create")

	return &txn, nil
}

// Get returns an owned transaction or ErrTransactionNotFound.
func (s *TransactionService) Get(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error) {
	txn, err := s.readRepo.GetByID(ctx, userID, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "userID", userID, "transactionID", transactionID, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// Update resolves an owned transaction, merges the supplied fields onto it,
// and re-normalizes the amount against the post-merge type before persisting.
func (s *TransactionService) Update(ctx context.Context, userID, transactionID uuid.UUID, patch TransactionPatch) (*models.TransactionDB, error) {
	if patch.Type != nil && !validTransactionType(*patch.Type) {
		logger.Log.Warnw("invalid transaction type", "transaction_type", *patch.Type)
		return nil, ErrInvalidTransactionType
	}

	txn, err := s.Get(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		txn.Title = *patch.Title
	}
	if patch.Type != nil {
		txn.Type = *patch.Type
	}
	if patch.Amount != nil {
		txn.Amount = *patch.Amount
	}
	txn.Amount = NormalizeAmount(txn.Amount, txn.Type)

	if err := s.writeRepo.Update(ctx, *txn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to update transaction", "userID", userID, "transactionID", transactionID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, *txn, "update")

	return txn, nil
}

// Delete resolves an owned transaction and permanently removes it.
func (s *TransactionService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	txn, err := s.Get(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.writeRepo.Delete(ctx, userID, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to delete transaction", "userID", userID, "transactionID", transactionID, "error", err)
		return err
	}

	s.publishEvent(ctx, *txn, "delete")

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TransactionReadRepository handles transaction read operations.
// Every query filters by the owning user so records of other users are
// indistinguishable from absent ones.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID returns the transaction with the given id if it belongs to userID,
// or nil when absent or owned by someone else.
func (r *TransactionReadRepository) GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, title, amount, transaction_type, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2
		LIMIT 1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, transactionID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

// ListByUserID returns all transactions owned by userID in store order.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, title, amount, transaction_type, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(txns),
		"error", err,
	)

	return txns, err
}

// TransactionWriteRepository handles transaction write operations.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new transaction record.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (transaction_id, user_id, title, amount, transaction_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Title, txn.Amount, txn.Type}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update rewrites the mutable fields of an owned transaction.
// Returns sql.ErrNoRows when the record is absent or owned by another user.
func (r *TransactionWriteRepository) Update(ctx context.Context, txn models.TransactionDB) error {
	const query = `
		UPDATE transactions
		SET title = $3, amount = $4, transaction_type = $5, updated_at = NOW()
		WHERE transaction_id = $1 AND user_id = $2
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Title, txn.Amount, txn.Type}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete permanently removes an owned transaction.
// Returns sql.ErrNoRows when the record is absent or owned by another user.
func (r *TransactionWriteRepository) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	const query = `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2
	`
	args := []any{transactionID, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

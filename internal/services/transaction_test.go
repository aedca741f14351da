package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/expensio/expense-tracker/internal/models"
	"github.com/expensio/expense-tracker/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name            string
		amount          float64
		transactionType string
		want            float64
	}{
		{"credit positive", 100, models.TypeCredit, 100},
		{"credit negative input", -100, models.TypeCredit, 100},
		{"debit positive", 5, models.TypeDebit, -5},
		{"debit negative input", -5, models.TypeDebit, -5},
		{"debit zero", 0, models.TypeDebit, 0},
		{"credit zero", 0, models.TypeCredit, 0},
		{"debit fraction", 42.5, models.TypeDebit, -42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeAmount(tt.amount, tt.transactionType))
		})
	}
}

func TestNormalizeAmount_Idempotent(t *testing.T) {
	// Normalizing an already-normalized amount must not flip the sign back.
	once := services.NormalizeAmount(5, models.TypeDebit)
	twice := services.NormalizeAmount(once, models.TypeDebit)
	assert.Equal(t, once, twice)
}

func newTransactionServiceForTest(t *testing.T) (*services.TransactionService, *services.MockTransactionReader, *services.MockTransactionWriter, *services.MockKafkaWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockKafka)
	return svc, mockReader, mockWriter, mockKafka
}

func TestTransactionService_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("debit stores negated magnitude", func(t *testing.T) {
		svc, _, mockWriter, mockKafka := newTransactionServiceForTest(t)

		var saved models.TransactionDB
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn models.TransactionDB) error {
				saved = txn
				return nil
			})
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := svc.Create(context.Background(), userID, "Coffee", 5, models.TypeDebit)
		assert.NoError(t, err)
		assert.Equal(t, float64(-5), txn.Amount)
		assert.Equal(t, float64(-5), saved.Amount)
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, models.TypeDebit, saved.Type)
		assert.NotEqual(t, uuid.Nil, saved.TransactionID)
	})

	t.Run("credit keeps magnitude", func(t *testing.T) {
		svc, _, mockWriter, mockKafka := newTransactionServiceForTest(t)

		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := svc.Create(context.Background(), userID, "Salary", 100, models.TypeCredit)
		assert.NoError(t, err)
		assert.Equal(t, float64(100), txn.Amount)
	})

	t.Run("invalid type", func(t *testing.T) {
		svc, _, _, _ := newTransactionServiceForTest(t)

		txn, err := svc.Create(context.Background(), userID, "Huh", 1, "TRANSFER")
		assert.ErrorIs(t, err, services.ErrInvalidTransactionType)
		assert.Nil(t, txn)
	})

	t.Run("save error", func(t *testing.T) {
		svc, _, mockWriter, _ := newTransactionServiceForTest(t)

		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		txn, err := svc.Create(context.Background(), userID, "Coffee", 5, models.TypeDebit)
		assert.Error(t, err)
		assert.Nil(t, txn)
	})

	t.Run("kafka failure does not fail the request", func(t *testing.T) {
		svc, _, mockWriter, mockKafka := newTransactionServiceForTest(t)

		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		txn, err := svc.Create(context.Background(), userID, "Coffee", 5, models.TypeDebit)
		assert.NoError(t, err)
		assert.NotNil(t, txn)
	})
}

func TestTransactionService_Get(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, mockReader, _, _ := newTransactionServiceForTest(t)

		stored := &models.TransactionDB{TransactionID: txnID, UserID: userID, Title: "Coffee", Amount: -5, Type: models.TypeDebit}
		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(stored, nil)

		txn, err := svc.Get(context.Background(), userID, txnID)
		assert.NoError(t, err)
		assert.Equal(t, stored, txn)
	})

	t.Run("absent or foreign-owned", func(t *testing.T) {
		svc, mockReader, _, _ := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(nil, nil)

		txn, err := svc.Get(context.Background(), userID, txnID)
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
		assert.Nil(t, txn)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockReader, _, _ := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(nil, errors.New("db error"))

		_, err := svc.Get(context.Background(), userID, txnID)
		assert.EqualError(t, err, "db error")
	})
}

func TestTransactionService_List(t *testing.T) {
	svc, mockReader, _, _ := newTransactionServiceForTest(t)

	userID := uuid.New()
	stored := []models.TransactionDB{
		{TransactionID: uuid.New(), UserID: userID, Title: "A", Amount: 10, Type: models.TypeCredit},
		{TransactionID: uuid.New(), UserID: userID, Title: "B", Amount: -3, Type: models.TypeDebit},
	}
	mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(stored, nil)

	txns, err := svc.List(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, stored, txns)
}

func TestTransactionService_Update(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()

	stored := models.TransactionDB{TransactionID: txnID, UserID: userID, Title: "Coffee", Amount: -5, Type: models.TypeDebit}

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("amount-only patch keeps title and type, re-derives sign", func(t *testing.T) {
		svc, mockReader, mockWriter, mockKafka := newTransactionServiceForTest(t)

		cp := stored
		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(&cp, nil)

		var updated models.TransactionDB
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn models.TransactionDB) error {
				updated = txn
				return nil
			})
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := svc.Update(context.Background(), userID, txnID, services.TransactionPatch{Amount: floatPtr(150)})
		assert.NoError(t, err)
		assert.Equal(t, "Coffee", txn.Title)
		assert.Equal(t, models.TypeDebit, txn.Type)
		assert.Equal(t, float64(-150), txn.Amount)
		assert.Equal(t, float64(-150), updated.Amount)
	})

	t.Run("type change renormalizes stored amount", func(t *testing.T) {
		svc, mockReader, mockWriter, mockKafka := newTransactionServiceForTest(t)

		cp := stored
		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(&cp, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := svc.Update(context.Background(), userID, txnID, services.TransactionPatch{Type: strPtr(models.TypeCredit)})
		assert.NoError(t, err)
		assert.Equal(t, models.TypeCredit, txn.Type)
		assert.Equal(t, float64(5), txn.Amount)
	})

	t.Run("full replace", func(t *testing.T) {
		svc, mockReader, mockWriter, mockKafka := newTransactionServiceForTest(t)

		cp := stored
		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(&cp, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		patch := services.TransactionPatch{
			Title:  strPtr("Groceries"),
			Amount: floatPtr(42.5),
			Type:   strPtr(models.TypeCredit),
		}
		txn, err := svc.Update(context.Background(), userID, txnID, patch)
		assert.NoError(t, err)
		assert.Equal(t, "Groceries", txn.Title)
		assert.Equal(t, float64(42.5), txn.Amount)
		assert.Equal(t, models.TypeCredit, txn.Type)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _ := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(nil, nil)

		txn, err := svc.Update(context.Background(), userID, txnID, services.TransactionPatch{Amount: floatPtr(1)})
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
		assert.Nil(t, txn)
	})

	t.Run("invalid type", func(t *testing.T) {
		svc, _, _, _ := newTransactionServiceForTest(t)

		txn, err := svc.Update(context.Background(), userID, txnID, services.TransactionPatch{Type: strPtr("BOGUS")})
		assert.ErrorIs(t, err, services.ErrInvalidTransactionType)
		assert.Nil(t, txn)
	})

	t.Run("record vanished between read and write", func(t *testing.T) {
		svc, mockReader, mockWriter, _ := newTransactionServiceForTest(t)

		cp := stored
		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(&cp, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)

		txn, err := svc.Update(context.Background(), userID, txnID, services.TransactionPatch{Amount: floatPtr(1)})
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
		assert.Nil(t, txn)
	})
}

func TestTransactionService_Delete(t *testing.T) {
	userID := uuid.New()
	txnID := uuid.New()
	stored := &models.TransactionDB{TransactionID: txnID, UserID: userID, Title: "Coffee", Amount: -5, Type: models.TypeDebit}

	t.Run("success", func(t *testing.T) {
		svc, mockReader, mockWriter, mockKafka := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), userID, txnID).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), userID, txnID))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _ := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(nil, nil)

		err := svc.Delete(context.Background(), userID, txnID)
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
	})

	t.Run("delete error", func(t *testing.T) {
		svc, mockReader, mockWriter, _ := newTransactionServiceForTest(t)

		mockReader.EXPECT().GetByID(gomock.Any(), userID, txnID).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), userID, txnID).Return(errors.New("db error"))

		err := svc.Delete(context.Background(), userID, txnID)
		assert.EqualError(t, err, "db error")
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expensio/expense-tracker/internal/models"
	"github.com/expensio/expense-tracker/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	txnID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockTransactionGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, txnID).
			Return(&models.TransactionDB{
				TransactionID: txnID,
				UserID:        userID,
				Title:         "Coffee",
				Amount:        -5,
				Type:          models.TypeDebit,
			}, nil)

		handler := NewGetTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodGet, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp GetTransactionResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, txnID.String(), resp.Data.ID)
		assert.Equal(t, "Coffee", resp.Data.Title)
		assert.Equal(t, float64(-5), resp.Data.Amount)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockTransactionGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, txnID).
			Return(nil, services.ErrTransactionNotFound)

		handler := NewGetTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodGet, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Transaction not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockTransactionGetter(ctrl)

		handler := NewGetTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodGet, "/transactions/not-a-uuid/", nil, userID), "id", "not-a-uuid")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Transaction not found"}`, rr.Body.String())
	})

	t.Run("no user in context", func(t *testing.T) {
		mockSvc := NewMockTransactionGetter(ctrl)

		handler := NewGetTransactionHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/transactions/"+txnID.String()+"/", nil), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockTransactionGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, txnID).
			Return(nil, errors.New("db error"))

		handler := NewGetTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodGet, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

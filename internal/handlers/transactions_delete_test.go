package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expensio/expense-tracker/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeleteTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	txnID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockTransactionDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), userID, txnID).Return(nil)

		handler := NewDeleteTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodDelete, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Transaction deleted successfully"}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockTransactionDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), userID, txnID).Return(services.ErrTransactionNotFound)

		handler := NewDeleteTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodDelete, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Transaction not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockTransactionDeleter(ctrl)

		handler := NewDeleteTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodDelete, "/transactions/oops/", nil, userID), "id", "oops")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		mockSvc := NewMockTransactionDeleter(ctrl)

		handler := NewDeleteTransactionHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/transactions/"+txnID.String()+"/", nil), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockTransactionDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), userID, txnID).Return(errors.New("db error"))

		handler := NewDeleteTransactionHandler(mockSvc)

		req := withURLParam(authRequest(http.MethodDelete, "/transactions/"+txnID.String()+"/", nil, userID), "id", txnID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

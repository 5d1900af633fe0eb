package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-server/internal/service"
	"github.com/fintrackhq/fintrack-server/internal/storage/transaction"
)

func TestReconcileBalance_RecomputesFromHistory(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	userID := uuid.Must(uuid.NewV4())

	history := []*transaction.Transaction{
		{Amount: decimal.NewFromInt(100), Category: transaction.CategorySnapshot{Type: "income"}},
		{Amount: decimal.NewFromInt(30), Category: transaction.CategorySnapshot{Type: "expense"}},
		{Amount: decimal.NewFromInt(5), Category: transaction.CategorySnapshot{Type: "expense"}},
	}

	users.On("FindByID", mock.Anything, userID).Return(testUser(userID, decimal.NewFromInt(999)), nil)
	transactions.On("ListByUser", mock.Anything, userID).Return(history, nil)
	users.On("UpdateBalance", mock.Anything, userID, decimalEq(decimal.NewFromInt(65))).Return(nil)

	action := &ReconcileBalance{UserID: userID}
	err := action.Perform(context.Background(), store)

	assert.NoError(t, err)
	assert.True(t, action.Result.Equal(decimal.NewFromInt(65)))
	users.AssertExpectations(t)
}

func TestReconcileBalance_EmptyHistoryResetsToZero(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	userID := uuid.Must(uuid.NewV4())

	users.On("FindByID", mock.Anything, userID).Return(testUser(userID, decimal.NewFromInt(42)), nil)
	transactions.On("ListByUser", mock.Anything, userID).Return([]*transaction.Transaction{}, nil)
	users.On("UpdateBalance", mock.Anything, userID, decimalEq(decimal.Zero)).Return(nil)

	action := &ReconcileBalance{UserID: userID}
	err := action.Perform(context.Background(), store)

	assert.NoError(t, err)
	assert.True(t, action.Result.IsZero())
}

func TestReconcileBalance_UserNotFound(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	userID := uuid.Must(uuid.NewV4())

	users.On("FindByID", mock.Anything, userID).Return(nil, nil)

	action := &ReconcileBalance{UserID: userID}
	err := action.Perform(context.Background(), store)

	var notFoundErr *service.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	transactions.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

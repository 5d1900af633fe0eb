package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-server/internal/storage/transaction"
	"github.com/fintrackhq/fintrack-server/internal/storage/user"
)

func storedTransaction(amount int64, categoryType string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "tx",
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Category: transaction.CategorySnapshot{Type: categoryType},
	}
}

func TestGetTransaction_NotFound(t *testing.T) {
	store, _, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	id := uuid.Must(uuid.NewV4())

	transactions.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.GetTransaction(context.Background(), id)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Transaction not found", err.Error())
}

func TestGetTransaction_Found(t *testing.T) {
	store, _, _, transactions := newMockStorage()
	svc := NewTransactionService(store)

	row := storedTransaction(25, "expense", time.Now())
	transactions.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	tx, err := svc.GetTransaction(context.Background(), row.ID)

	assert.NoError(t, err)
	assert.Equal(t, row.ID, tx.ID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(25)))
}

func TestUpdateTransaction_PassesPatchThrough(t *testing.T) {
	store, _, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	id := uuid.Must(uuid.NewV4())

	newName := "renamed"
	newAmount := decimal.NewFromInt(77)
	updated := storedTransaction(77, "expense", time.Now())
	updated.Name = newName

	transactions.On("Update", mock.Anything, id, mock.MatchedBy(func(u *transaction.TransactionUpdate) bool {
		return u.Name != nil && *u.Name == newName &&
			u.Amount != nil && u.Amount.Equal(newAmount) &&
			u.Description == nil && u.Date == nil
	})).Return(updated, nil)

	tx, err := svc.UpdateTransaction(context.Background(), id, TransactionPatch{
		Name:   &newName,
		Amount: &newAmount,
	})

	assert.NoError(t, err)
	assert.Equal(t, newName, tx.Name)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	store, _, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	id := uuid.Must(uuid.NewV4())

	transactions.On("Update", mock.Anything, id, mock.Anything).Return(nil, nil)

	_, err := svc.UpdateTransaction(context.Background(), id, TransactionPatch{})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListTransactionsForUser_Totals(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())

	now := time.Now()
	rows := []*transaction.Transaction{
		storedTransaction(200, "income", now),
		storedTransaction(50, "expense", now.Add(-time.Hour)),
		storedTransaction(30, "expense", now.Add(-2*time.Hour)),
	}

	users.On("FindByID", mock.Anything, userID).Return(&user.User{
		ID:      userID,
		Balance: decimal.NewFromInt(500),
	}, nil)
	transactions.On("ListByUser", mock.Anything, userID).Return(rows, nil)

	listing, err := svc.ListTransactionsForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listing.Transactions, 3)
	assert.True(t, listing.TotalIncome.Equal(decimal.NewFromInt(200)))
	assert.True(t, listing.TotalExpense.Equal(decimal.NewFromInt(80)))
	// The stored balance is reported as-is, not recomputed from the rows.
	assert.True(t, listing.TotalBalance.Equal(decimal.NewFromInt(500)))
}

func TestListTransactionsForUser_UserNotFound(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())

	users.On("FindByID", mock.Anything, userID).Return(nil, nil)

	_, err := svc.ListTransactionsForUser(context.Background(), userID)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "User not found", err.Error())
	transactions.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestListTransactionsForUser_EmptyHistory(t *testing.T) {
	store, users, _, transactions := newMockStorage()
	svc := NewTransactionService(store)
	userID := uuid.Must(uuid.NewV4())

	users.On("FindByID", mock.Anything, userID).Return(&user.User{
		ID:      userID,
		Balance: decimal.NewFromInt(12),
	}, nil)
	transactions.On("ListByUser", mock.Anything, userID).Return([]*transaction.Transaction{}, nil)

	listing, err := svc.ListTransactionsForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Empty(t, listing.Transactions)
	assert.True(t, listing.TotalIncome.IsZero())
	assert.True(t, listing.TotalExpense.IsZero())
	assert.True(t, listing.TotalBalance.Equal(decimal.NewFromInt(12)))
}

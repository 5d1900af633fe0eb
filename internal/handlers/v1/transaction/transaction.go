package transaction

import (
	"time"

	"github.com/fintrackhq/fintrack-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string              `json:"id" doc:"Transaction UUID"`
	Name        string              `json:"name" doc:"Name of the transaction"`
	Amount      float64             `json:"amount" doc:"Amount; direction comes from the category type"`
	Description string              `json:"description,omitempty" doc:"Free-form description"`
	Date        string              `json:"date" doc:"RFC3339 transaction date"`
	User        TransactionUser     `json:"user" doc:"Owner snapshot taken at creation time"`
	Category    TransactionCategory `json:"category" doc:"Category snapshot taken at creation time"`
	CreatedAt   string              `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string              `json:"updatedAt" doc:"RFC3339 last update time"`
}

// TransactionUser is the snapshotted owner inside a transaction response.
type TransactionUser struct {
	ID       string  `json:"id" doc:"User UUID"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance" doc:"User balance at snapshot time"`
}

// TransactionCategory is the snapshotted category inside a transaction response.
type TransactionCategory struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name"`
	Type string `json:"type" doc:"income or expense"`
}

func transactionToAPI(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Name:        tx.Name,
		Amount:      tx.Amount.InexactFloat64(),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		User: TransactionUser{
			ID:       tx.User.ID.String(),
			Username: tx.User.Username,
			Email:    tx.User.Email,
			Balance:  tx.User.Balance.InexactFloat64(),
		},
		Category: TransactionCategory{
			ID:   tx.Category.ID.String(),
			Name: tx.Category.Name,
			Type: tx.Category.Type,
		},
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tx.UpdatedAt.Format(time.RFC3339),
	}
}

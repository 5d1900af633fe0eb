package transaction

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	db *sql.DB
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

const transactionColumns = `id, name, amount, description, transaction_date,
	user_id, user_snapshot, category_snapshot, created_at, updated_at`

// timeLayout is RFC3339 with fixed-width nanoseconds. Timestamps are stored
// as text and ordered lexicographically, which is only chronological when
// every value has the same width; RFC3339Nano trims trailing zeros and breaks
// that for fractional-second dates.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FindByID retrieves a transaction by primary key. Returns nil when absent.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id.String())
	return scanTransaction(row)
}

// Insert creates a new transaction and returns the saved record.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	userSnapshot, err := json.Marshal(create.User)
	if err != nil {
		return nil, fmt.Errorf("marshal user snapshot: %w", err)
	}
	categorySnapshot, err := json.Marshal(create.Category)
	if err != nil {
		return nil, fmt.Errorf("marshal category snapshot: %w", err)
	}

	now := time.Now().UTC()
	nowStr := now.Format(timeLayout)
	_, err = t.db.ExecContext(ctx,
		`INSERT INTO transactions
		 (id, name, amount, description, transaction_date, user_id, user_snapshot, category_snapshot, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), create.Name, create.Amount.String(), create.Description,
		create.Date.UTC().Format(timeLayout), create.UserID.String(),
		string(userSnapshot), string(categorySnapshot), nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ID:          id,
		Name:        create.Name,
		Amount:      create.Amount,
		Description: create.Description,
		Date:        create.Date.UTC(),
		UserID:      create.UserID,
		User:        create.User,
		Category:    create.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ListByUser returns a user's transactions ordered by transaction date
// descending; rows with equal dates keep insertion order.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE user_id = ?
		 ORDER BY transaction_date DESC, rowid ASC`, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// Update applies a field patch and returns the updated record, nil when absent.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	existing, err := t.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Date != nil {
		existing.Date = update.Date.UTC()
	}
	existing.UpdatedAt = time.Now().UTC()

	_, err = t.db.ExecContext(ctx,
		`UPDATE transactions SET name = ?, amount = ?, description = ?, transaction_date = ?, updated_at = ?
		 WHERE id = ?`,
		existing.Name, existing.Amount.String(), existing.Description,
		existing.Date.Format(timeLayout),
		existing.UpdatedAt.Format(timeLayout), id.String())
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a transaction by primary key.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id.String())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var (
		idStr, amountStr, dateStr, userIDStr string
		userSnapshot, categorySnapshot       string
		createdAtStr, updatedAtStr           string
		tx                                   Transaction
	)
	err := row.Scan(&idStr, &tx.Name, &amountStr, &tx.Description, &dateStr,
		&userIDStr, &userSnapshot, &categorySnapshot, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tx.ID, err = uuid.FromString(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse transaction id: %w", err)
	}
	tx.UserID, err = uuid.FromString(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	tx.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if err := json.Unmarshal([]byte(userSnapshot), &tx.User); err != nil {
		return nil, fmt.Errorf("unmarshal user snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(categorySnapshot), &tx.Category); err != nil {
		return nil, fmt.Errorf("unmarshal category snapshot: %w", err)
	}
	tx.Date, err = time.Parse(time.RFC3339Nano, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse transaction_date: %w", err)
	}
	tx.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	tx.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &tx, nil
}

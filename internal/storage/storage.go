package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fintrackhq/fintrack-server/internal/storage/category"
	"github.com/fintrackhq/fintrack-server/internal/storage/transaction"
	"github.com/fintrackhq/fintrack-server/internal/storage/user"
)

// Storage bundles the record collections. Each table operation is a single
// statement; multi-record consistency is the caller's responsibility
// (compensating actions, see the transaction workflow).
type Storage struct {
	DB           *sql.DB
	Users        user.IUserTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
}

// Open opens the sqlite database at dbPath, runs migrations, and returns the
// assembled storage.
func Open(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return NewStorage(db), nil
}

// NewStorage wires the tables onto an already opened database.
func NewStorage(db *sql.DB) *Storage {
	return &Storage{
		DB:           db,
		Users:        user.NewUsersTable(db),
		Categories:   category.NewCategoriesTable(db),
		Transactions: transaction.NewTransactionsTable(db),
	}
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

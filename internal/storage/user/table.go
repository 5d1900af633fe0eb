package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UsersTable provides access to the users table.
type UsersTable struct {
	db *sql.DB
}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// NewUsersTable creates a UsersTable for the given database.
func NewUsersTable(db *sql.DB) *UsersTable {
	return &UsersTable{db: db}
}

const userColumns = `id, username, email, password_hash, balance, profile, created_at, updated_at`

// timeLayout is RFC3339 with fixed-width nanoseconds so the text ordering of
// created_at matches chronological order. RFC3339Nano trims trailing zeros,
// which makes whole-second values compare after fractional ones.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FindByID retrieves a user by primary key. Returns nil when absent.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

// FindByEmail retrieves a user by email. Returns nil when absent.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	var profile sql.NullString
	if create.Profile != nil {
		raw, err := json.Marshal(create.Profile)
		if err != nil {
			return uuid.Nil, fmt.Errorf("marshal profile: %w", err)
		}
		profile = sql.NullString{String: string(raw), Valid: true}
	}

	now := time.Now().UTC().Format(timeLayout)
	_, err = t.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, balance, profile, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), create.Username, create.Email, create.PasswordHash,
		decimal.Zero.String(), profile, now, now)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns all users ordered by creation time.
func (t *UsersTable) List(ctx context.Context) ([]*User, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// UpdateBalance writes a new balance for the given user.
func (t *UsersTable) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	res, err := t.db.ExecContext(ctx,
		`UPDATE users SET balance = ?, updated_at = ? WHERE id = ?`,
		balance.String(), time.Now().UTC().Format(timeLayout), id.String())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// Delete removes a user by primary key.
func (t *UsersTable) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id.String())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var (
		idStr, balanceStr       string
		profile                 sql.NullString
		createdAtStr, updatedAt string
		u                       User
	)
	err := row.Scan(&idStr, &u.Username, &u.Email, &u.PasswordHash, &balanceStr,
		&profile, &createdAtStr, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.ID, err = uuid.FromString(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	u.Balance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	if profile.Valid {
		u.Profile = &Profile{}
		if err := json.Unmarshal([]byte(profile.String), u.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
	}
	u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	u.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &u, nil
}

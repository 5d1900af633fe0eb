package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/storage/user"
)

// User represents a user in the service layer. The credential hash never
// leaves the storage layer boundary except for login verification.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Balance   decimal.Decimal
	Profile   *Profile
	CreatedAt time.Time
}

// Profile is the optional nested profile record.
type Profile struct {
	FirstName   string
	LastName    string
	NickName    string
	DateOfBirth *time.Time
}

// RegisterUserInput is the input for registering a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Profile  *Profile
}

func userFromStorage(row *user.User) User {
	u := User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
	}
	if row.Profile != nil {
		u.Profile = &Profile{
			FirstName:   row.Profile.FirstName,
			LastName:    row.Profile.LastName,
			NickName:    row.Profile.NickName,
			DateOfBirth: row.Profile.DateOfBirth,
		}
	}
	return u
}

func profileToStorage(p *Profile) *user.Profile {
	if p == nil {
		return nil
	}
	return &user.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		NickName:    p.NickName,
		DateOfBirth: p.DateOfBirth,
	}
}

// Package user exposes the user management endpoints.
package user

import (
	"time"

	"github.com/fintrackhq/fintrack-server/internal/service"
)

// User is the API response model for a user. The credential hash is never
// part of it.
type User struct {
	ID        string   `json:"id" doc:"User UUID"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Balance   float64  `json:"balance" doc:"Denormalized running balance"`
	Profile   *Profile `json:"profile,omitempty"`
	CreatedAt string   `json:"createdAt" doc:"RFC3339 creation time"`
}

// Profile is the optional nested profile in user responses.
type Profile struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	NickName    string `json:"nickName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty" doc:"RFC3339 date of birth"`
}

func userToAPI(usr service.User) User {
	out := User{
		ID:        usr.ID.String(),
		Username:  usr.Username,
		Email:     usr.Email,
		Balance:   usr.Balance.InexactFloat64(),
		CreatedAt: usr.CreatedAt.Format(time.RFC3339),
	}
	if usr.Profile != nil {
		out.Profile = &Profile{
			FirstName: usr.Profile.FirstName,
			LastName:  usr.Profile.LastName,
			NickName:  usr.Profile.NickName,
		}
		if usr.Profile.DateOfBirth != nil {
			out.Profile.DateOfBirth = usr.Profile.DateOfBirth.Format(time.RFC3339)
		}
	}
	return out
}

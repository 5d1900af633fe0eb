// Package auth exposes the login endpoint that exchanges credentials for a
// bearer token.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/auth"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginData carries the signed token and the user it resolves to.
type LoginData struct {
	Token  string `json:"token" doc:"Bearer token for authenticated endpoints"`
	UserID string `json:"userId" doc:"User UUID the token resolves to"`
}

// LoginResponseBody is the response body for logging in.
type LoginResponseBody struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    LoginData `json:"data"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// authenticator is the service dependency of the login handler.
type authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*service.User, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	Users     authenticator
	JWTSecret string
	TokenTTL  time.Duration
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(users authenticator, jwtSecret string) *LoginHandler {
	return &LoginHandler{Users: users, JWTSecret: jwtSecret}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	usr, err := h.Users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, respond.Error(err, "Failed to log in")
	}

	token, err := auth.GenerateToken(h.JWTSecret, usr.ID, h.TokenTTL)
	if err != nil {
		return nil, respond.Error(err, "Failed to log in")
	}

	return &LoginOutput{
		Body: LoginResponseBody{
			Success: true,
			Message: "Login successful",
			Data:    LoginData{Token: token, UserID: usr.ID.String()},
		},
	}, nil
}

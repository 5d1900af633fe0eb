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

// RegisterBody is the request body for signing up.
type RegisterBody struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// RegisterInput is the Huma input for signing up.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponseBody is the response body for signing up. The new account
// is logged in immediately, so it carries a token like login does.
type RegisterResponseBody struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    LoginData `json:"data"`
}

// RegisterOutput is the Huma output for signing up.
type RegisterOutput struct {
	Status int
	Body   RegisterResponseBody
}

// registrar is the service dependency of the register handler.
type registrar interface {
	RegisterUser(ctx context.Context, input service.RegisterUserInput) (*service.User, error)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	Users     registrar
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(users registrar, jwtSecret string) *RegisterHandler {
	return &RegisterHandler{Users: users, JWTSecret: jwtSecret}
}

// Register registers the signup endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Summary:     "Sign up",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	usr, err := h.Users.RegisterUser(ctx, service.RegisterUserInput{
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, respond.Error(err, "Failed to register")
	}

	token, err := auth.GenerateToken(h.JWTSecret, usr.ID, h.TokenTTL)
	if err != nil {
		return nil, respond.Error(err, "Failed to register")
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body: RegisterResponseBody{
			Success: true,
			Message: "User created successfully",
			Data:    LoginData{Token: token, UserID: usr.ID.String()},
		},
	}, nil
}

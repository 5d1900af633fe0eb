package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-server/internal/auth"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// mockAuthenticator is a mock for authenticator.
type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, email, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestLoginHandler_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	users := &mockAuthenticator{}
	users.On("Authenticate", mock.Anything, "alice@example.com", "hunter2").
		Return(&service.User{ID: userID, Email: "alice@example.com"}, nil)

	_, api := humatest.New(t)
	NewLoginHandler(users, "test-secret").Register(api)

	resp := api.Post("/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "hunter2",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var data LoginData
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, userID.String(), data.UserID)

	// The issued token resolves back to the same user.
	parsed, err := auth.ParseToken("test-secret", data.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	users := &mockAuthenticator{}
	users.On("Authenticate", mock.Anything, "alice@example.com", "wrong").
		Return(nil, &service.BusinessRuleError{Message: "Invalid password"})

	_, api := humatest.New(t)
	NewLoginHandler(users, "test-secret").Register(api)

	resp := api.Post("/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid password", env.Message)
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	users := &mockAuthenticator{}
	users.On("Authenticate", mock.Anything, "ghost@example.com", "x").
		Return(nil, &service.NotFoundError{Entity: "User"})

	_, api := humatest.New(t)
	NewLoginHandler(users, "test-secret").Register(api)

	resp := api.Post("/auth/login", map[string]any{
		"email":    "ghost@example.com",
		"password": "x",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// GetUserInput is the Huma input for fetching a user.
type GetUserInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// GetUserResponseBody is the response body for fetching a user.
type GetUserResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// GetUserOutput is the Huma output for fetching a user.
type GetUserOutput struct {
	Body GetUserResponseBody
}

// userGetter is the service dependency of the get handler.
type userGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// GetUserHandler handles GET /user/{id}.
type GetUserHandler struct {
	Users userGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(users userGetter) *GetUserHandler {
	return &GetUserHandler{Users: users}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/user/{id}",
		Summary:     "Get user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "User not found")
	}

	usr, err := h.Users.GetUser(ctx, id)
	if err != nil {
		return nil, respond.Error(err, "Failed to get user")
	}

	return &GetUserOutput{
		Body: GetUserResponseBody{
			Success: true,
			Message: "User retrieved successfully",
			Data:    userToAPI(*usr),
		},
	}, nil
}

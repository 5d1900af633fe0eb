package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// DeleteUserResponseBody is the response body for deleting a user.
type DeleteUserResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponseBody
}

// userDeleter is the service dependency of the delete handler.
type userDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// DeleteUserHandler handles DELETE /user/{id}.
type DeleteUserHandler struct {
	Users userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(users userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{Users: users}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/user/{id}",
		Summary:     "Delete user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "User not found")
	}

	usr, err := h.Users.DeleteUser(ctx, id)
	if err != nil {
		return nil, respond.Error(err, "Failed to delete user")
	}

	return &DeleteUserOutput{
		Body: DeleteUserResponseBody{
			Success: true,
			Message: "User deleted successfully",
			Data:    userToAPI(*usr),
		},
	}, nil
}

package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// ListUsersResponseBody is the response body for listing users.
type ListUsersResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []User `json:"data"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

// userLister is the service dependency of the list handler.
type userLister interface {
	ListUsers(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /user.
type ListUsersHandler struct {
	Users userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(users userLister) *ListUsersHandler {
	return &ListUsersHandler{Users: users}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/user",
		Summary:     "List users",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users, err := h.Users.ListUsers(ctx)
	if err != nil {
		return nil, respond.Error(err, "Failed to list users")
	}

	data := make([]User, len(users))
	for i, usr := range users {
		data[i] = userToAPI(usr)
	}

	return &ListUsersOutput{
		Body: ListUsersResponseBody{
			Success: true,
			Message: "Users retrieved successfully",
			Data:    data,
		},
	}, nil
}

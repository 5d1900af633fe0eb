package user

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// CreateUserBody is the request body for registering a user.
type CreateUserBody struct {
	Username string             `json:"username,omitempty"`
	Email    string             `json:"email,omitempty"`
	Password string             `json:"password,omitempty"`
	Profile  *CreateUserProfile `json:"profile,omitempty"`
}

// CreateUserProfile is the optional profile in a registration request.
type CreateUserProfile struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	NickName    string `json:"nickName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty" doc:"RFC3339 date of birth"`
}

// CreateUserInput is the Huma input for registering a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserResponseBody is the response body for registering a user.
type CreateUserResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// CreateUserOutput is the Huma output for registering a user.
type CreateUserOutput struct {
	Status int
	Body   CreateUserResponseBody
}

// userRegistrar is the service dependency of the create handler.
type userRegistrar interface {
	RegisterUser(ctx context.Context, input service.RegisterUserInput) (*service.User, error)
}

// CreateUserHandler handles POST /user.
type CreateUserHandler struct {
	Users userRegistrar
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(users userRegistrar) *CreateUserHandler {
	return &CreateUserHandler{Users: users}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/user",
		Summary:     "Register user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	reg := service.RegisterUserInput{
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	}
	if input.Body.Profile != nil {
		profile := &service.Profile{
			FirstName: input.Body.Profile.FirstName,
			LastName:  input.Body.Profile.LastName,
			NickName:  input.Body.Profile.NickName,
		}
		if input.Body.Profile.DateOfBirth != "" {
			dob, err := time.Parse(time.RFC3339, input.Body.Profile.DateOfBirth)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid dateOfBirth")
			}
			profile.DateOfBirth = &dob
		}
		reg.Profile = profile
	}

	usr, err := h.Users.RegisterUser(ctx, reg)
	if err != nil {
		return nil, respond.Error(err, "Failed to create user")
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body: CreateUserResponseBody{
			Success: true,
			Message: "User created successfully",
			Data:    userToAPI(*usr),
		},
	}, nil
}

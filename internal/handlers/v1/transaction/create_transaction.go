package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/logging"
	"github.com/fintrackhq/fintrack-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
// Field presence is validated by the workflow, not the schema, so a request
// missing several fields gets one message naming all of them.
type CreateTransactionBody struct {
	Name        string   `json:"name,omitempty" doc:"Name of the transaction"`
	Amount      *float64 `json:"amount,omitempty" doc:"Amount; direction comes from the category type"`
	Date        string   `json:"date,omitempty" doc:"RFC3339 transaction date"`
	Description string   `json:"description,omitempty" doc:"Free-form description"`
	UserID      string   `json:"userId,omitempty" doc:"Owning user UUID"`
	CategoryID  string   `json:"categoryId,omitempty" doc:"Category UUID"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// actionProcessor is the interface for submitting actions to the operator.
type actionProcessor interface {
	Process(ctx context.Context, key string, action actions.IAction) error
}

// CreateTransactionHandler handles POST /transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transaction",
		Summary:     "Create transaction",
		Description: "Creates a transaction and applies its amount to the owning user's balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput converts the body into a workflow action.
// Absent fields stay unset so the workflow can report them all at once;
// present-but-malformed fields fail here.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	action := &actions.CreateTransaction{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}

	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		action.Amount = &amount
	}

	if input.Body.Date != "" {
		date, err := time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date")
		}
		action.Date = &date
	}

	if input.Body.UserID != "" {
		userID, err := uuid.FromString(input.Body.UserID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid userId")
		}
		action.UserID = userID
	}

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId")
		}
		action.CategoryID = categoryID
	}

	return action, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action.UserID.String(), action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.Error(err, "Failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", action.Result.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponseBody{
			Success: true,
			Message: "Transaction created successfully",
			Data:    transactionToAPI(*action.Result),
		},
	}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching a transaction.
type GetTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// GetTransactionResponseBody is the response body for fetching a transaction.
type GetTransactionResponseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

// GetTransactionOutput is the Huma output for fetching a transaction.
type GetTransactionOutput struct {
	Body GetTransactionResponseBody
}

// transactionGetter is the service dependency of the get handler.
type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /transaction/{id}.
type GetTransactionHandler struct {
	Transactions transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(transactions transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{Transactions: transactions}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/transaction/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		// A malformed ID can never name a transaction.
		return nil, huma.NewError(http.StatusNotFound, "Transaction not found")
	}

	tx, err := h.Transactions.GetTransaction(ctx, id)
	if err != nil {
		return nil, respond.Error(err, "Failed to get transaction")
	}

	return &GetTransactionOutput{
		Body: GetTransactionResponseBody{
			Success: true,
			Message: "Transaction retrieved successfully",
			Data:    transactionToAPI(*tx),
		},
	}, nil
}

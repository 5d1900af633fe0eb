package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Omitted fields keep their stored values.
type UpdateTransactionBody struct {
	Name        *string  `json:"name,omitempty" doc:"New name"`
	Amount      *float64 `json:"amount,omitempty" doc:"New amount"`
	Description *string  `json:"description,omitempty" doc:"New description"`
	Date        *string  `json:"date,omitempty" doc:"New RFC3339 transaction date"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionResponseBody is the response body for updating a transaction.
type UpdateTransactionResponseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponseBody
}

// transactionUpdater is the service dependency of the update handler.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transaction/{id}.
type UpdateTransactionHandler struct {
	Transactions transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(transactions transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Transactions: transactions}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Patches transaction fields. The owning user's balance is not recomputed.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "Transaction not found")
	}

	patch := service.TransactionPatch{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		patch.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date")
		}
		patch.Date = &date
	}

	tx, err := h.Transactions.UpdateTransaction(ctx, id, patch)
	if err != nil {
		return nil, respond.Error(err, "Failed to update transaction")
	}

	return &UpdateTransactionOutput{
		Body: UpdateTransactionResponseBody{
			Success: true,
			Message: "Transaction updated successfully",
			Data:    transactionToAPI(*tx),
		},
	}, nil
}

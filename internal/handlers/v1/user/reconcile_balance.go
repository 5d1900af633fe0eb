package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/operator/actions"
)

// ReconcileBalanceInput is the Huma input for reconciling a user's balance.
type ReconcileBalanceInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// ReconcileBalanceData carries the recomputed balance.
type ReconcileBalanceData struct {
	Balance float64 `json:"balance" doc:"Balance recomputed from the transaction history"`
}

// ReconcileBalanceResponseBody is the response body for reconciling a balance.
type ReconcileBalanceResponseBody struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    ReconcileBalanceData `json:"data"`
}

// ReconcileBalanceOutput is the Huma output for reconciling a balance.
type ReconcileBalanceOutput struct {
	Body ReconcileBalanceResponseBody
}

// actionProcessor is the interface for submitting actions to the operator.
type actionProcessor interface {
	Process(ctx context.Context, key string, action actions.IAction) error
}

// ReconcileBalanceHandler handles POST /user/{id}/reconcile. The recompute
// runs on the user's queue so it cannot race a concurrent transaction.
type ReconcileBalanceHandler struct {
	Operator actionProcessor
}

// NewReconcileBalanceHandler creates a new ReconcileBalanceHandler.
func NewReconcileBalanceHandler(op actionProcessor) *ReconcileBalanceHandler {
	return &ReconcileBalanceHandler{Operator: op}
}

// Register registers the reconcile balance endpoint with the Huma API.
func (h *ReconcileBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reconcile-balance",
		Method:      http.MethodPost,
		Path:        "/user/{id}/reconcile",
		Summary:     "Reconcile balance",
		Description: "Recomputes the user's balance from their transaction history and stores it.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ReconcileBalanceHandler) handle(ctx context.Context, input *ReconcileBalanceInput) (*ReconcileBalanceOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "User not found")
	}

	action := &actions.ReconcileBalance{UserID: id}
	if err := h.Operator.Process(ctx, id.String(), action); err != nil {
		return nil, respond.Error(err, "Failed to reconcile balance")
	}

	return &ReconcileBalanceOutput{
		Body: ReconcileBalanceResponseBody{
			Success: true,
			Message: "Balance reconciled successfully",
			Data:    ReconcileBalanceData{Balance: action.Result.InexactFloat64()},
		},
	}, nil
}

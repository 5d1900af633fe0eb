package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/auth"
	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// TransactionListing is the data payload of the list endpoint: the caller's
// transactions plus totals. totalIncome and totalExpense are summed from the
// listed records; totalBalance is the user's stored balance.
type TransactionListing struct {
	Transactions []Transaction `json:"transactions"`
	TotalIncome  float64       `json:"totalIncome"`
	TotalExpense float64       `json:"totalExpense"`
	TotalBalance float64       `json:"totalBalance"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    TransactionListing `json:"data"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the service dependency of the list handler.
type transactionLister interface {
	ListTransactionsForUser(ctx context.Context, userID uuid.UUID) (*service.TransactionListing, error)
}

// ListTransactionsHandler handles GET /transaction. The caller is identified
// by their bearer token, never by a query parameter.
type ListTransactionsHandler struct {
	Transactions transactionLister
	Auth         func(huma.Context, func(huma.Context))
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(transactions transactionLister, authMiddleware func(huma.Context, func(huma.Context))) *ListTransactionsHandler {
	return &ListTransactionsHandler{Transactions: transactions, Auth: authMiddleware}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transaction",
		Summary:     "List transactions",
		Description: "Lists the authenticated user's transactions, newest first, with totals.",
		Tags:        []string{"Transactions"},
		Middlewares: huma.Middlewares{h.Auth},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "Not authorized, no token provided")
	}

	listing, err := h.Transactions.ListTransactionsForUser(ctx, userID)
	if err != nil {
		return nil, respond.Error(err, "Failed to list transactions")
	}

	data := TransactionListing{
		Transactions: make([]Transaction, len(listing.Transactions)),
		TotalIncome:  listing.TotalIncome.InexactFloat64(),
		TotalExpense: listing.TotalExpense.InexactFloat64(),
		TotalBalance: listing.TotalBalance.InexactFloat64(),
	}
	for i, tx := range listing.Transactions {
		data.Transactions[i] = transactionToAPI(tx)
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{
			Success: true,
			Message: "Transactions retrieved successfully",
			Data:    data,
		},
	}, nil
}

package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack-server/internal/service"
)

// mockGetter is a mock for transactionGetter.
type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func newGetTestAPI(t *testing.T, getter transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(getter).Register(api)
	return api
}

func TestGetTransactionHandler_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	getter := &mockGetter{}
	getter.On("GetTransaction", mock.Anything, id).Return(&service.Transaction{
		ID:     id,
		Name:   "Lunch",
		Amount: decimal.NewFromInt(12),
	}, nil)

	api := newGetTestAPI(t, getter)
	resp := api.Get("/transaction/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.True(t, env.Success)

	var data Transaction
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, id.String(), data.ID)
	assert.Equal(t, "Lunch", data.Name)
}

func TestGetTransactionHandler_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	getter := &mockGetter{}
	getter.On("GetTransaction", mock.Anything, id).
		Return(nil, &service.NotFoundError{Entity: "Transaction"})

	api := newGetTestAPI(t, getter)
	resp := api.Get("/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "Transaction not found", env.Message)
}

func TestGetTransactionHandler_MalformedID(t *testing.T) {
	getter := &mockGetter{}

	api := newGetTestAPI(t, getter)
	resp := api.Get("/transaction/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	getter.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
}

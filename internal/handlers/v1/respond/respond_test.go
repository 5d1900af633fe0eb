package respond

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/fintrack-server/internal/service"
)

func TestError_ValidationMapsTo400(t *testing.T) {
	err := Error(&service.ValidationError{Fields: []string{"name", "amount"}}, "fallback")

	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok)
	assert.Equal(t, 400, statusErr.GetStatus())
	assert.Equal(t, "name, amount are required", err.Error())
}

func TestError_NotFoundMapsTo404(t *testing.T) {
	err := Error(&service.NotFoundError{Entity: "User"}, "fallback")

	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok)
	assert.Equal(t, 404, statusErr.GetStatus())
	assert.Equal(t, "User not found", err.Error())
}

func TestError_BusinessRuleMapsTo400(t *testing.T) {
	err := Error(&service.BusinessRuleError{Message: "Insufficient balance"}, "fallback")

	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok)
	assert.Equal(t, 400, statusErr.GetStatus())
	assert.Equal(t, "Insufficient balance", err.Error())
}

func TestError_UnknownHidesDetailBehindFallback(t *testing.T) {
	err := Error(&service.PersistenceError{Op: "insert", Err: errors.New("disk full")}, "Failed to create transaction")

	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok)
	assert.Equal(t, 500, statusErr.GetStatus())
	assert.Equal(t, "Failed to create transaction", err.Error())
	assert.NotContains(t, err.Error(), "disk full")
}

func TestError_WrappedServiceErrorStillMatches(t *testing.T) {
	wrapped := &service.PersistenceError{Op: "find user", Err: &service.NotFoundError{Entity: "User"}}

	err := Error(wrapped, "fallback")

	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok)
	assert.Equal(t, 404, statusErr.GetStatus())
}

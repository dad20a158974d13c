package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	fallback := "Could not load cart"

	assert.Equal(t, "Cart is locked", UserMessage(NewRemoteFailure(409, "Cart is locked", nil), fallback))
	assert.Equal(t, fallback, UserMessage(NewRemoteFailure(500, "", nil), fallback))
	assert.Equal(t, "Could not reach the server", UserMessage(NewRemoteUnreachable(errors.New("dial tcp")), fallback))
	assert.Equal(t, fallback, UserMessage(errors.New("boom"), fallback))
	assert.Equal(t, fallback, UserMessage(NewInternalError(errors.New("boom")), fallback))
	assert.Equal(t, "Name is required", UserMessage(NewValidationError("Name is required", nil), fallback))

	wrapped := fmt.Errorf("add item: %w", NewRemoteFailure(400, "Out of stock", nil))
	assert.Equal(t, "Out of stock", UserMessage(wrapped, fallback))
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	de := ToDomainError(errors.New("boom"))
	assert.Equal(t, CodeInternal, de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)

	nf := ToDomainError(NewNotFound("product", nil))
	assert.Equal(t, http.StatusNotFound, nf.HTTPStatus)
	assert.Equal(t, "product not found", nf.Message)
}

func TestIsStatus(t *testing.T) {
	err := fmt.Errorf("get: %w", NewRemoteFailure(http.StatusNotFound, "missing", nil))
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, IsStatus(errors.New("x"), http.StatusNotFound))
}

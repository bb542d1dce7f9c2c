package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapErrorPassesThroughAppError(t *testing.T) {
	appErr := NewAppError("tech", "user", ErrCodeRateLimited, http.StatusTooManyRequests, nil)
	assert.Same(t, appErr, MapError(appErr))
}

func TestMapErrorValidation(t *testing.T) {
	mapped := MapError(fmt.Errorf("square footage must be positive"))
	assert.Equal(t, ErrCodeInvalidRecord, mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, MsgInvalidRecord, mapped.UserMessage)
}

func TestMapErrorHistory(t *testing.T) {
	mapped := MapError(fmt.Errorf("valuation history is not configured"))
	assert.Equal(t, ErrCodeHistoryUnavailable, mapped.Code)
	assert.Equal(t, http.StatusServiceUnavailable, mapped.HTTPStatus)
}

func TestMapErrorDefault(t *testing.T) {
	mapped := MapError(fmt.Errorf("something odd"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New(http.StatusConflict, "already exists")

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(cause, http.StatusBadRequest, "bad input")

	assert.Equal(t, "bad input", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("unique_violation")
	err := WithCause(errSentinel, cause)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, "already exists", err.Error())
}

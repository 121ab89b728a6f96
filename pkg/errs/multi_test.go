package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sgurin/order-service/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestMultiError_Error(t *testing.T) {
	first := errors.New("write failed")
	second := errors.New("rollback failed")

	err := errs.NewMultiError(first, second)

	assert.Equal(t, "0: write failed; 1: rollback failed", err.Error())
}

func TestMultiError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("context: %w", sentinel)
	other := errors.New("other")

	err := errs.NewMultiError(wrapped, other)

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, other)

	var multi *errs.MultiError
	assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &multi)
	assert.Len(t, multi.Causes(), 2)
}

func TestMultiError_SkipsNil(t *testing.T) {
	cause := errors.New("cause")

	err := errs.NewMultiError(nil, cause, nil)

	assert.Len(t, err.Causes(), 1)
	assert.Equal(t, "0: cause", err.Error())
}

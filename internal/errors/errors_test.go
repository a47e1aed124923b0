package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	err := NewError("quantity must be an integer").
		WithHint("Fractional quantities are not billable").
		Mark(ErrInvalidQuantity)

	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.False(t, errors.Is(err, ErrInvalidAmount))
	assert.Equal(t, "Fractional quantities are not billable", Hint(err))
}

func TestWithErrorPreservesChain(t *testing.T) {
	cause := errors.New("unexpected token")
	err := WithError(cause).
		WithHint("Invalid request format").
		Mark(ErrInvalidInput)

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, cause))
}

func TestReportableDetails(t *testing.T) {
	err := NewErrorf("quantity exceeds maximum of %d", 999999).
		WithReportableDetails(map[string]any{"quantity": "1000000"}).
		Mark(ErrInvalidQuantity)

	details := ReportableDetails(err)
	assert.Equal(t, "1000000", details["quantity"])

	resp := NewErrorResponse(err)
	assert.False(t, resp.Success)
	assert.Equal(t, "1000000", resp.Error.Details["quantity"])
}

func TestIsValidation(t *testing.T) {
	billingKinds := []error{
		ErrInvalidAmount,
		ErrInvalidQuantity,
		ErrDiscountExceedsBound,
		ErrNegativeAmount,
		ErrInvalidInput,
		ErrOutOfRange,
		ErrOverrideExceedsCeiling,
		ErrEmptySplit,
		ErrSplitMismatch,
	}

	for _, kind := range billingKinds {
		err := NewError("boom").Mark(kind)
		assert.True(t, IsValidation(err), "expected %v to be a validation kind", kind)
		assert.Equal(t, http.StatusBadRequest, HTTPStatusFromErr(err))
	}

	internal := NewError("boom").Mark(ErrInternal)
	assert.False(t, IsValidation(internal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(internal))

	assert.Equal(t, http.StatusNotFound, HTTPStatusFromErr(NewError("gone").Mark(ErrNotFound)))
	assert.Equal(t, http.StatusOK, HTTPStatusFromErr(nil))
}

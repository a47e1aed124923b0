// Package errors provides the error handling primitives for the billing
// engine. Every failure a public operation can return is marked with exactly
// one of the sentinel errors below, so callers can branch on the kind with
// errors.Is without parsing messages.
package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the billing calculation domain. These are the only
// failure kinds the engine signals; they propagate unchanged to the caller.
var (
	// ErrInvalidAmount marks a monetary value that is negative, non-finite or
	// otherwise out of domain.
	ErrInvalidAmount = errors.New("invalid_amount")

	// ErrInvalidQuantity marks a quantity that is negative, non-integer or
	// exceeds the maximum billable quantity.
	ErrInvalidQuantity = errors.New("invalid_quantity")

	// ErrDiscountExceedsBound marks a percentage discount above 100 or an
	// absolute discount above its base.
	ErrDiscountExceedsBound = errors.New("discount_exceeds_bound")

	// ErrNegativeAmount marks a value that must be non-negative but is not.
	// Used by the tax operations.
	ErrNegativeAmount = errors.New("negative_amount")

	// ErrInvalidInput marks a structural argument that is not the expected
	// shape, e.g. a malformed line item list on the wire.
	ErrInvalidInput = errors.New("invalid_input")

	// ErrOutOfRange marks a days-to-bill value outside [1, daysAvailable].
	ErrOutOfRange = errors.New("out_of_range")

	// ErrOverrideExceedsCeiling marks an override amount above the computed
	// proration ceiling.
	ErrOverrideExceedsCeiling = errors.New("override_exceeds_ceiling")

	// ErrEmptySplit marks a payment split with no entries.
	ErrEmptySplit = errors.New("empty_split")

	// ErrSplitMismatch marks a payment split whose amounts do not reconcile
	// with the target total within tolerance.
	ErrSplitMismatch = errors.New("split_mismatch")
)

// Ambient sentinel errors used by the surrounding service and HTTP layers.
var (
	ErrValidation = errors.New("validation_error")
	ErrNotFound   = errors.New("not_found")
	ErrInternal   = errors.New("internal_error")
)

// IsValidation reports whether err is any of the recoverable validation
// kinds. All billing failures are validation failures from the caller's
// perspective; only ErrInternal is not.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrValidation,
		ErrInvalidAmount,
		ErrInvalidQuantity,
		ErrDiscountExceedsBound,
		ErrNegativeAmount,
		ErrInvalidInput,
		ErrOutOfRange,
		ErrOverrideExceedsCeiling,
		ErrEmptySplit,
		ErrSplitMismatch,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is marked as a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// HTTPStatusFromErr maps a marked error to the HTTP status the REST layer
// responds with.
func HTTPStatusFromErr(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package types

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
)

// DiscountKind determines how a discount value is interpreted.
type DiscountKind string

const (
	// DiscountKindPercentage interprets the discount as a percentage of the
	// base amount, 0 to 100.
	DiscountKindPercentage DiscountKind = "PERCENTAGE"

	// DiscountKindAbsolute interprets the discount as a fixed monetary
	// amount, 0 up to the base amount.
	DiscountKindAbsolute DiscountKind = "ABSOLUTE"
)

// DefaultDiscountKind is the kind applied when a discount value is present
// without an explicit kind. The legacy system defaulted to absolute amounts;
// keep this a named default rather than an implicit fallthrough.
const DefaultDiscountKind = DiscountKindAbsolute

// Validate checks that the kind is one of the known values.
func (k DiscountKind) Validate() error {
	switch k {
	case DiscountKindPercentage, DiscountKindAbsolute:
		return nil
	default:
		return ierr.NewErrorf("invalid discount kind: %s", k).
			WithHint("Discount kind must be PERCENTAGE or ABSOLUTE").
			Mark(ierr.ErrInvalidInput)
	}
}

// OrDefault resolves an unset kind to the named default.
func (k DiscountKind) OrDefault() DiscountKind {
	if k == "" {
		return DefaultDiscountKind
	}
	return k
}

package types

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places every externally observable
// monetary value is rounded to. Intermediate arithmetic keeps full decimal
// precision; only boundary values are rounded.
const AmountPrecision int32 = 2

// MaxQuantity is the maximum billable quantity for a single line item.
const MaxQuantity int64 = 999999

// TaxRate is the fixed value-added tax rate (ISV 15%). It is part of the
// interface contract and not configurable per call.
var TaxRate = decimal.NewFromFloat(0.15)

// PaymentSplitTolerance is the maximum allowed deviation between the sum of a
// payment split and its target total. Splits are entered by a human as
// independently rounded decimal strings, so exact equality is not assumed.
var PaymentSplitTolerance = decimal.RequireFromString("0.01")

// RoundToAmountPrecision rounds a monetary amount to the engine's observable
// precision using round-half-up: 10.555 becomes 10.56, 10.554 becomes 10.55.
// decimal.Round rounds half away from zero, which is half-up on the
// non-negative domain the engine accepts.
func RoundToAmountPrecision(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPrecision)
}

// ValidatePrice checks that a price is a valid monetary amount.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ierr.NewError("price must be non-negative").
			WithHint("Unit price cannot be negative").
			WithReportableDetails(map[string]any{
				"price": price.String(),
			}).
			Mark(ierr.ErrInvalidAmount)
	}
	return nil
}

// ValidateQuantity checks that a quantity is a non-negative integer within
// the maximum billable quantity.
func ValidateQuantity(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return ierr.NewError("quantity must be non-negative").
			WithHint("Quantity cannot be negative").
			WithReportableDetails(map[string]any{
				"quantity": qty.String(),
			}).
			Mark(ierr.ErrInvalidQuantity)
	}
	if !qty.IsInteger() {
		return ierr.NewError("quantity must be an integer").
			WithHint("Fractional quantities are not billable").
			WithReportableDetails(map[string]any{
				"quantity": qty.String(),
			}).
			Mark(ierr.ErrInvalidQuantity)
	}
	if qty.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return ierr.NewErrorf("quantity exceeds maximum of %d", MaxQuantity).
			WithHintf("Quantity cannot exceed %d", MaxQuantity).
			WithReportableDetails(map[string]any{
				"quantity": qty.String(),
			}).
			Mark(ierr.ErrInvalidQuantity)
	}
	return nil
}

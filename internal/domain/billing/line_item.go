// Package billing implements the monetary calculations for priced line
// items: per-item totals, line and order level discounts, order aggregation
// and fixed-rate tax application and inversion.
package billing

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents a single billed item: a unit price, an integral
// quantity and an optional line-level discount. Line items are value objects;
// they are constructed by the caller, consumed once by aggregation and never
// mutated.
type LineItem struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`

	// Discount is the optional line-level discount. A nil discount and a
	// zero discount are equivalent (no-op).
	Discount *decimal.Decimal `json:"discount,omitempty"`

	// DiscountKind interprets Discount. When a discount is present without a
	// kind, types.DefaultDiscountKind applies.
	DiscountKind types.DiscountKind `json:"discount_kind,omitempty"`
}

// Validate checks the line item invariants: non-negative price, integral
// bounded quantity and, when present, a discount within bounds for its kind.
func (li *LineItem) Validate() error {
	if err := types.ValidatePrice(li.UnitPrice); err != nil {
		return err
	}
	if err := types.ValidateQuantity(li.Quantity); err != nil {
		return err
	}
	if li.Discount != nil {
		base, err := ItemTotal(li.UnitPrice, li.Quantity)
		if err != nil {
			return err
		}
		if _, err := DiscountAmount(base, *li.Discount, li.DiscountKind.OrDefault()); err != nil {
			return err
		}
	}
	return nil
}

// ItemTotal computes a single item's contribution before discounts:
// round(unitPrice * quantity). Zero price and zero quantity are valid and
// yield zero.
func ItemTotal(unitPrice, quantity decimal.Decimal) (decimal.Decimal, error) {
	if err := types.ValidatePrice(unitPrice); err != nil {
		return decimal.Zero, err
	}
	if err := types.ValidateQuantity(quantity); err != nil {
		return decimal.Zero, err
	}
	return types.RoundToAmountPrecision(unitPrice.Mul(quantity)), nil
}

// DiscountAmount computes the monetary value of a discount against a base
// amount. Percentage discounts are bounded by 100, absolute discounts by the
// base itself.
func DiscountAmount(base, discount decimal.Decimal, kind types.DiscountKind) (decimal.Decimal, error) {
	if base.IsNegative() || discount.IsNegative() {
		return decimal.Zero, ierr.NewError("discount base and value must be non-negative").
			WithHint("Discounts cannot be computed over negative amounts").
			WithReportableDetails(map[string]any{
				"base":     base.String(),
				"discount": discount.String(),
			}).
			Mark(ierr.ErrNegativeAmount)
	}

	kind = kind.OrDefault()
	if err := kind.Validate(); err != nil {
		return decimal.Zero, err
	}

	switch kind {
	case types.DiscountKindPercentage:
		if discount.GreaterThan(decimal.NewFromInt(100)) {
			return decimal.Zero, ierr.NewError("percentage discount exceeds 100").
				WithHint("A percentage discount cannot exceed 100%").
				WithReportableDetails(map[string]any{
					"discount": discount.String(),
				}).
				Mark(ierr.ErrDiscountExceedsBound)
		}
		return types.RoundToAmountPrecision(base.Mul(discount).Div(decimal.NewFromInt(100))), nil

	default: // types.DiscountKindAbsolute
		if discount.GreaterThan(base) {
			return decimal.Zero, ierr.NewError("absolute discount exceeds base amount").
				WithHint("An absolute discount cannot exceed the amount it applies to").
				WithReportableDetails(map[string]any{
					"base":     base.String(),
					"discount": discount.String(),
				}).
				Mark(ierr.ErrDiscountExceedsBound)
		}
		return types.RoundToAmountPrecision(discount), nil
	}
}

// TotalWithDiscount computes the item total net of its line-level discount.
// An absent or zero discount is the identity.
func (li *LineItem) TotalWithDiscount() (decimal.Decimal, error) {
	total, err := ItemTotal(li.UnitPrice, li.Quantity)
	if err != nil {
		return decimal.Zero, err
	}
	if li.Discount == nil || li.Discount.IsZero() {
		return total, nil
	}

	discount, err := DiscountAmount(total, *li.Discount, li.DiscountKind.OrDefault())
	if err != nil {
		return decimal.Zero, err
	}
	return types.RoundToAmountPrecision(total.Sub(discount)), nil
}

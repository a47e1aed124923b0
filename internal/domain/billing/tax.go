package billing

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/shopspring/decimal"
)

// TaxSplit is a total decomposed into its tax-exclusive subtotal and tax
// portion. Subtotal + Tax equals Total within the engine's rounding
// tolerance.
type TaxSplit struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// AddTax applies the fixed tax rate to a tax-exclusive subtotal.
func AddTax(subtotal decimal.Decimal) (*TaxSplit, error) {
	if subtotal.IsNegative() {
		return nil, ierr.NewError("subtotal must be non-negative").
			WithHint("Tax cannot be applied to a negative subtotal").
			WithReportableDetails(map[string]any{
				"subtotal": subtotal.String(),
			}).
			Mark(ierr.ErrNegativeAmount)
	}

	tax := types.RoundToAmountPrecision(subtotal.Mul(types.TaxRate))
	return &TaxSplit{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    types.RoundToAmountPrecision(subtotal.Add(tax)),
	}, nil
}

// ExtractTax recovers the tax-exclusive subtotal and tax portion from a
// tax-inclusive total, as required when re-deriving a fiscal invoice from a
// previously recorded amount. The input total is returned unchanged rather
// than re-derived, so a second rounding pass can never disagree with the
// caller's original figure.
//
// ExtractTax and AddTax are not exact inverses at the cent level for all
// inputs; rounding is lossy and callers must tolerate a one-cent deviation.
func ExtractTax(totalInclusive decimal.Decimal) (*TaxSplit, error) {
	if totalInclusive.IsNegative() {
		return nil, ierr.NewError("total must be non-negative").
			WithHint("Tax cannot be extracted from a negative total").
			WithReportableDetails(map[string]any{
				"total": totalInclusive.String(),
			}).
			Mark(ierr.ErrNegativeAmount)
	}

	subtotal := types.RoundToAmountPrecision(
		totalInclusive.Div(decimal.NewFromInt(1).Add(types.TaxRate)),
	)
	return &TaxSplit{
		Subtotal: subtotal,
		Tax:      types.RoundToAmountPrecision(totalInclusive.Sub(subtotal)),
		Total:    totalInclusive,
	}, nil
}

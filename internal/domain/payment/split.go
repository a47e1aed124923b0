// Package payment validates that a split of a total across multiple payment
// instruments reconciles exactly with the amount owed.
package payment

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/shopspring/decimal"
)

// Split is one part of a payment: an instrument and the amount paid with it.
type Split struct {
	Method types.PaymentMethod `json:"method"`
	Amount decimal.Decimal     `json:"amount"`
}

// Reconcile validates that the splits account for the target total: the list
// is non-empty, every amount is positive, and the sum matches the target
// within types.PaymentSplitTolerance. On success the split is returned
// unchanged; the engine never adjusts amounts.
func Reconcile(targetTotal decimal.Decimal, splits []Split) ([]Split, error) {
	if len(splits) == 0 {
		return nil, ierr.NewError("payment split is empty").
			WithHint("At least one payment entry is required").
			Mark(ierr.ErrEmptySplit)
	}

	if !targetTotal.IsPositive() {
		return nil, ierr.NewError("target total must be positive").
			WithHint("The amount owed must be greater than zero").
			WithReportableDetails(map[string]any{
				"target_total": targetTotal.String(),
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	sum := decimal.Zero
	for i, split := range splits {
		if !split.Amount.IsPositive() {
			return nil, ierr.NewErrorf("payment amount must be positive at position %d", i).
				WithHint("Every payment entry must carry a positive amount").
				WithReportableDetails(map[string]any{
					"position": i,
					"method":   string(split.Method),
					"amount":   split.Amount.String(),
				}).
				Mark(ierr.ErrInvalidAmount)
		}
		sum = sum.Add(split.Amount)
	}

	if sum.Sub(targetTotal).Abs().GreaterThan(types.PaymentSplitTolerance) {
		return nil, ierr.NewError("payment split does not reconcile with the total").
			WithHintf("Payments sum to %s but the total owed is %s",
				types.RoundToAmountPrecision(sum).String(),
				types.RoundToAmountPrecision(targetTotal).String()).
			WithReportableDetails(map[string]any{
				"sum":          sum.String(),
				"target_total": targetTotal.String(),
			}).
			Mark(ierr.ErrSplitMismatch)
	}

	return splits, nil
}

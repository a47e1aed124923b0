package billing

import (
	"github.com/clinicore/clinicore/internal/types"
	"github.com/shopspring/decimal"
)

// OrderBreakdown is the full result of aggregating an order. It is produced
// once per aggregation call and is immutable. Total always equals
// round(Subtotal - Discounts) + Tax, and Tax is zero unless tax was
// requested.
type OrderBreakdown struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discounts decimal.Decimal `json:"discounts"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// SumItemTotals folds the discounted item totals over all items. Only the
// final running sum is rounded, not each partial sum, to avoid truncation
// drift. An empty item list yields zero.
func SumItemTotals(items []LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i := range items {
		total, err := items[i].TotalWithDiscount()
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(total)
	}
	return types.RoundToAmountPrecision(sum), nil
}

// OrderTotal aggregates line items into an order breakdown: item totals are
// summed, an optional order-level discount is applied, and tax is computed on
// the discounted subtotal when requested.
func OrderTotal(
	items []LineItem,
	applyTax bool,
	globalDiscount decimal.Decimal,
	globalDiscountKind types.DiscountKind,
) (*OrderBreakdown, error) {
	subtotal, err := SumItemTotals(items)
	if err != nil {
		return nil, err
	}

	discounts := decimal.Zero
	if globalDiscount.IsPositive() {
		discounts, err = DiscountAmount(subtotal, globalDiscount, globalDiscountKind.OrDefault())
		if err != nil {
			return nil, err
		}
	}

	netSubtotal := types.RoundToAmountPrecision(subtotal.Sub(discounts))

	tax := decimal.Zero
	if applyTax {
		tax = types.RoundToAmountPrecision(netSubtotal.Mul(types.TaxRate))
	}

	return &OrderBreakdown{
		Subtotal:  subtotal,
		Discounts: discounts,
		Tax:       tax,
		Total:     types.RoundToAmountPrecision(netSubtotal.Add(tax)),
	}, nil
}

package dto

import (
	"github.com/clinicore/clinicore/internal/domain/billing"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/clinicore/clinicore/internal/domain/proration"
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/clinicore/clinicore/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderLineItem is one priced entry of an order calculation request.
type OrderLineItem struct {
	UnitPrice decimal.Decimal  `json:"unit_price" swaggertype:"string"`
	Quantity  decimal.Decimal  `json:"quantity" swaggertype:"string"`
	Discount  *decimal.Decimal `json:"discount,omitempty" swaggertype:"string"`

	// DiscountKind defaults to ABSOLUTE when a discount is present without a
	// kind.
	DiscountKind types.DiscountKind `json:"discount_kind,omitempty"`
}

type CalculateOrderRequest struct {
	// LineItems may be empty; an empty order totals to zero.
	LineItems []OrderLineItem `json:"line_items"`

	// ApplyTax requests the fixed-rate tax on the discounted subtotal.
	ApplyTax bool `json:"apply_tax"`

	// GlobalDiscount is the optional order-level discount applied after the
	// line items are summed.
	GlobalDiscount     *decimal.Decimal   `json:"global_discount,omitempty" swaggertype:"string"`
	GlobalDiscountKind types.DiscountKind `json:"global_discount_kind,omitempty"`
}

// Validate checks the request shape. Monetary bounds are enforced by the
// calculation itself so failures carry the precise error kind.
func (r *CalculateOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for i := range r.LineItems {
		if r.LineItems[i].DiscountKind != "" {
			if err := r.LineItems[i].DiscountKind.Validate(); err != nil {
				return err
			}
		}
	}
	if r.GlobalDiscountKind != "" {
		if err := r.GlobalDiscountKind.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToLineItems converts the request entries to domain line items.
func (r *CalculateOrderRequest) ToLineItems() []billing.LineItem {
	return lo.Map(r.LineItems, func(item OrderLineItem, _ int) billing.LineItem {
		return billing.LineItem{
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			Discount:     item.Discount,
			DiscountKind: item.DiscountKind,
		}
	})
}

// OrderBreakdownResponse mirrors billing.OrderBreakdown on the wire.
type OrderBreakdownResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Discounts decimal.Decimal `json:"discounts" swaggertype:"string"`
	Tax       decimal.Decimal `json:"tax" swaggertype:"string"`
	Total     decimal.Decimal `json:"total" swaggertype:"string"`
}

// NewOrderBreakdownResponse converts a domain breakdown to the wire shape.
func NewOrderBreakdownResponse(b *billing.OrderBreakdown) *OrderBreakdownResponse {
	return &OrderBreakdownResponse{
		Subtotal:  b.Subtotal,
		Discounts: b.Discounts,
		Tax:       b.Tax,
		Total:     b.Total,
	}
}

// PrepareInvoiceRequest asks for the tax-exclusive decomposition of a
// previously recorded tax-inclusive total.
type PrepareInvoiceRequest struct {
	TotalInclusive decimal.Decimal `json:"total_inclusive" swaggertype:"string"`
}

func (r *PrepareInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// TaxSplitResponse mirrors billing.TaxSplit on the wire.
type TaxSplitResponse struct {
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Tax      decimal.Decimal `json:"tax" swaggertype:"string"`
	Total    decimal.Decimal `json:"total" swaggertype:"string"`
}

// NewTaxSplitResponse converts a domain tax split to the wire shape.
func NewTaxSplitResponse(s *billing.TaxSplit) *TaxSplitResponse {
	return &TaxSplitResponse{
		Subtotal: s.Subtotal,
		Tax:      s.Tax,
		Total:    s.Total,
	}
}

// HospitalizationChargeRequest bills a number of elapsed-but-unbilled days of
// an ongoing stay at a fixed daily rate. The day window is resolved by the
// caller from the last billed date.
type HospitalizationChargeRequest struct {
	DailyRate      decimal.Decimal  `json:"daily_rate" swaggertype:"string"`
	DaysAvailable  int              `json:"days_available" validate:"min=0"`
	DaysToBill     int              `json:"days_to_bill"`
	OverrideAmount *decimal.Decimal `json:"override_amount,omitempty" swaggertype:"string"`
}

func (r *HospitalizationChargeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToProrationParams converts the request to calculator parameters.
func (r *HospitalizationChargeRequest) ToProrationParams() proration.ProrationParams {
	return proration.ProrationParams{
		DailyRate:      r.DailyRate,
		DaysAvailable:  r.DaysAvailable,
		DaysToBill:     r.DaysToBill,
		OverrideAmount: r.OverrideAmount,
	}
}

// HospitalizationChargeResponse mirrors proration.ProrationResult on the
// wire.
type HospitalizationChargeResponse struct {
	AmountDue  decimal.Decimal `json:"amount_due" swaggertype:"string"`
	DaysBilled int             `json:"days_billed"`
	Overridden bool            `json:"overridden"`
}

// NewHospitalizationChargeResponse converts a proration result to the wire
// shape.
func NewHospitalizationChargeResponse(res *proration.ProrationResult) *HospitalizationChargeResponse {
	return &HospitalizationChargeResponse{
		AmountDue:  res.AmountDue,
		DaysBilled: res.DaysBilled,
		Overridden: res.Overridden,
	}
}

// PaymentSplitEntry is one (method, amount) pair of a payment split.
type PaymentSplitEntry struct {
	Method types.PaymentMethod `json:"method" validate:"required"`
	Amount decimal.Decimal     `json:"amount" swaggertype:"string"`
}

// ReconcilePaymentRequest validates a caller-assembled payment split against
// the total owed.
type ReconcilePaymentRequest struct {
	TargetTotal decimal.Decimal     `json:"target_total" swaggertype:"string"`
	Splits      []PaymentSplitEntry `json:"splits"`
}

func (r *ReconcilePaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for i := range r.Splits {
		if err := r.Splits[i].Method.Validate(); err != nil {
			return ierr.WithError(err).
				WithHintf("Payment entry %d carries an unknown method", i).
				Mark(ierr.ErrInvalidInput)
		}
	}
	return nil
}

// ToSplits converts the request entries to domain splits.
func (r *ReconcilePaymentRequest) ToSplits() []payment.Split {
	return lo.Map(r.Splits, func(entry PaymentSplitEntry, _ int) payment.Split {
		return payment.Split{
			Method: entry.Method,
			Amount: entry.Amount,
		}
	})
}

// PaymentReconciliationResponse echoes the validated split.
type PaymentReconciliationResponse struct {
	TargetTotal decimal.Decimal     `json:"target_total" swaggertype:"string"`
	Splits      []PaymentSplitEntry `json:"splits"`
	Reconciled  bool                `json:"reconciled"`
}

// NewPaymentReconciliationResponse converts validated domain splits to the
// wire shape.
func NewPaymentReconciliationResponse(targetTotal decimal.Decimal, splits []payment.Split) *PaymentReconciliationResponse {
	return &PaymentReconciliationResponse{
		TargetTotal: targetTotal,
		Reconciled:  true,
		Splits: lo.Map(splits, func(split payment.Split, _ int) PaymentSplitEntry {
			return PaymentSplitEntry{
				Method: split.Method,
				Amount: split.Amount,
			}
		}),
	}
}

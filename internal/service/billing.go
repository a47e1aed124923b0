package service

import (
	"context"

	"github.com/clinicore/clinicore/internal/api/dto"
	"github.com/clinicore/clinicore/internal/domain/billing"
	"github.com/clinicore/clinicore/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// BillingService exposes the billing calculation operations. Every operation
// is a pure function of its request: there is no shared mutable state, no
// I/O, and a failed validation never produces a partial result.
type BillingService interface {
	// CalculateOrder aggregates priced line items into an order breakdown,
	// applying line and order level discounts and the fixed-rate tax when
	// requested.
	CalculateOrder(ctx context.Context, req dto.CalculateOrderRequest) (*dto.OrderBreakdownResponse, error)

	// PrepareInvoice re-derives the tax-exclusive subtotal and tax portion
	// from a previously recorded tax-inclusive total, for fiscal invoicing.
	PrepareInvoice(ctx context.Context, req dto.PrepareInvoiceRequest) (*dto.TaxSplitResponse, error)

	// CalculateHospitalizationCharge prorates the fixed daily rate of an
	// ongoing stay over the requested number of unbilled days.
	CalculateHospitalizationCharge(ctx context.Context, req dto.HospitalizationChargeRequest) (*dto.HospitalizationChargeResponse, error)

	// ReconcilePayment validates that a split of the total owed across
	// multiple payment instruments accounts for it exactly.
	ReconcilePayment(ctx context.Context, req dto.ReconcilePaymentRequest) (*dto.PaymentReconciliationResponse, error)
}

type billingService struct {
	ServiceParams
}

// NewBillingService creates a new billing service.
func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
	}
}

func (s *billingService) CalculateOrder(ctx context.Context, req dto.CalculateOrderRequest) (*dto.OrderBreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	globalDiscount := decimal.Zero
	if req.GlobalDiscount != nil {
		globalDiscount = *req.GlobalDiscount
	}

	breakdown, err := billing.OrderTotal(
		req.ToLineItems(),
		req.ApplyTax,
		globalDiscount,
		req.GlobalDiscountKind,
	)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("calculated order breakdown",
		"line_items", len(req.LineItems),
		"apply_tax", req.ApplyTax,
		"subtotal", breakdown.Subtotal.String(),
		"discounts", breakdown.Discounts.String(),
		"tax", breakdown.Tax.String(),
		"total", breakdown.Total.String(),
	)

	return dto.NewOrderBreakdownResponse(breakdown), nil
}

func (s *billingService) PrepareInvoice(ctx context.Context, req dto.PrepareInvoiceRequest) (*dto.TaxSplitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	split, err := billing.ExtractTax(req.TotalInclusive)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("extracted tax for invoice",
		"total_inclusive", req.TotalInclusive.String(),
		"subtotal", split.Subtotal.String(),
		"tax", split.Tax.String(),
	)

	return dto.NewTaxSplitResponse(split), nil
}

func (s *billingService) CalculateHospitalizationCharge(ctx context.Context, req dto.HospitalizationChargeRequest) (*dto.HospitalizationChargeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.ProrationCalculator.Calculate(ctx, req.ToProrationParams())
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("calculated hospitalization charge",
		"daily_rate", req.DailyRate.String(),
		"days_billed", result.DaysBilled,
		"overridden", result.Overridden,
		"amount_due", result.AmountDue.String(),
	)

	return dto.NewHospitalizationChargeResponse(result), nil
}

func (s *billingService) ReconcilePayment(ctx context.Context, req dto.ReconcilePaymentRequest) (*dto.PaymentReconciliationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	splits, err := payment.Reconcile(req.TargetTotal, req.ToSplits())
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("reconciled payment split",
		"target_total", req.TargetTotal.String(),
		"entries", len(splits),
	)

	return dto.NewPaymentReconciliationResponse(req.TargetTotal, splits), nil
}

package v1

import (
	"net/http"

	"github.com/clinicore/clinicore/internal/api/dto"
	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/logger"
	"github.com/clinicore/clinicore/internal/service"
	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service service.BillingService
	log     *logger.Logger
}

func NewBillingHandler(service service.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{service: service, log: log}
}

// @Summary Calculate an order breakdown
// @Description Aggregate priced line items with discounts and optional tax into subtotal, discounts, tax and total
// @Tags Billing
// @Accept json
// @Produce json
// @Param order body dto.CalculateOrderRequest true "Order line items and discount options"
// @Success 200 {object} dto.OrderBreakdownResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /billing/orders/calculate [post]
func (h *BillingHandler) CalculateOrder(c *gin.Context) {
	var req dto.CalculateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind order calculation request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrInvalidInput))
		return
	}

	resp, err := h.service.CalculateOrder(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Prepare a fiscal invoice split
// @Description Recover the tax-exclusive subtotal and tax portion from a recorded tax-inclusive total
// @Tags Billing
// @Accept json
// @Produce json
// @Param invoice body dto.PrepareInvoiceRequest true "Tax-inclusive total"
// @Success 200 {object} dto.TaxSplitResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /billing/invoices/prepare [post]
func (h *BillingHandler) PrepareInvoice(c *gin.Context) {
	var req dto.PrepareInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind invoice preparation request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrInvalidInput))
		return
	}

	resp, err := h.service.PrepareInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Calculate a hospitalization charge
// @Description Prorate the daily rate of an ongoing stay over the requested unbilled days
// @Tags Billing
// @Accept json
// @Produce json
// @Param charge body dto.HospitalizationChargeRequest true "Daily rate and day window"
// @Success 200 {object} dto.HospitalizationChargeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /billing/hospitalizations/charge [post]
func (h *BillingHandler) CalculateHospitalizationCharge(c *gin.Context) {
	var req dto.HospitalizationChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind hospitalization charge request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrInvalidInput))
		return
	}

	resp, err := h.service.CalculateHospitalizationCharge(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Reconcile a payment split
// @Description Validate that a list of (method, amount) payments accounts for the total owed
// @Tags Billing
// @Accept json
// @Produce json
// @Param payment body dto.ReconcilePaymentRequest true "Target total and payment entries"
// @Success 200 {object} dto.PaymentReconciliationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /billing/payments/reconcile [post]
func (h *BillingHandler) ReconcilePayment(c *gin.Context) {
	var req dto.ReconcilePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind payment reconciliation request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrInvalidInput))
		return
	}

	resp, err := h.service.ReconcilePayment(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Package proration computes the amount owed for a bounded number of
// unbilled days of a recurring per-day charge, e.g. an ongoing
// hospitalization stay.
package proration

import (
	"github.com/shopspring/decimal"
)

// ProrationParams are the inputs for a proration calculation. DaysAvailable
// is the externally resolved day window: how many elapsed days are currently
// billable, computed by the caller from the last billed date and the current
// time. Injecting it keeps the calculator deterministic and independent of
// the wall clock.
type ProrationParams struct {
	// DailyRate is the fixed per-day charge.
	DailyRate decimal.Decimal `json:"daily_rate"`

	// DaysAvailable is the maximum number of days currently billable.
	DaysAvailable int `json:"days_available"`

	// DaysToBill is the caller's choice of how many of the available days to
	// bill, 1 to DaysAvailable inclusive.
	DaysToBill int `json:"days_to_bill"`

	// OverrideAmount optionally replaces the computed amount. It must be
	// positive and must not exceed DaysToBill * DailyRate.
	OverrideAmount *decimal.Decimal `json:"override_amount,omitempty"`
}

// ProrationResult is the outcome of a proration calculation.
type ProrationResult struct {
	// AmountDue is the amount owed for the billed days.
	AmountDue decimal.Decimal `json:"amount_due"`

	// DaysBilled echoes the number of days the amount covers.
	DaysBilled int `json:"days_billed"`

	// Overridden reports whether a caller-supplied amount replaced the
	// computed one.
	Overridden bool `json:"overridden"`
}

package proration

import (
	"context"

	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/shopspring/decimal"
)

// Calculator performs proration calculations. It is kept separate from the
// service to allow different calculation strategies or easier testing.
type Calculator interface {
	Calculate(ctx context.Context, params ProrationParams) (*ProrationResult, error)
}

type dailyRateCalculator struct{}

// NewCalculator returns the day-based proration calculator.
func NewCalculator() Calculator {
	return &dailyRateCalculator{}
}

func (c *dailyRateCalculator) Calculate(ctx context.Context, params ProrationParams) (*ProrationResult, error) {
	if params.DailyRate.IsNegative() {
		return nil, ierr.NewError("daily rate must be non-negative").
			WithHint("The per-day rate cannot be negative").
			WithReportableDetails(map[string]any{
				"daily_rate": params.DailyRate.String(),
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	if params.DaysToBill < 1 || params.DaysToBill > params.DaysAvailable {
		return nil, ierr.NewErrorf("days to bill must be between 1 and %d", params.DaysAvailable).
			WithHint("Requested days exceed the billable day window").
			WithReportableDetails(map[string]any{
				"days_to_bill":   params.DaysToBill,
				"days_available": params.DaysAvailable,
			}).
			Mark(ierr.ErrOutOfRange)
	}

	ceiling := params.DailyRate.Mul(decimal.NewFromInt(int64(params.DaysToBill)))

	if params.OverrideAmount != nil {
		override := *params.OverrideAmount
		if override.GreaterThan(ceiling) {
			return nil, ierr.NewError("override amount exceeds the computed ceiling").
				WithHintf("The amount cannot exceed %s for %d day(s)",
					types.RoundToAmountPrecision(ceiling).String(), params.DaysToBill).
				WithReportableDetails(map[string]any{
					"override_amount": override.String(),
					"ceiling":         ceiling.String(),
				}).
				Mark(ierr.ErrOverrideExceedsCeiling)
		}
		if !override.IsPositive() {
			return nil, ierr.NewError("override amount must be positive").
				WithHint("Provide an amount greater than zero or omit the override").
				WithReportableDetails(map[string]any{
					"override_amount": override.String(),
				}).
				Mark(ierr.ErrInvalidAmount)
		}
		return &ProrationResult{
			AmountDue:  types.RoundToAmountPrecision(override),
			DaysBilled: params.DaysToBill,
			Overridden: true,
		}, nil
	}

	return &ProrationResult{
		AmountDue:  types.RoundToAmountPrecision(ceiling),
		DaysBilled: params.DaysToBill,
	}, nil
}

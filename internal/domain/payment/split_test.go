package payment

import (
	"testing"

	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		targetTotal string
		splits      []Split
	}{
		{
			name:        "CashAndCard",
			targetTotal: "207",
			splits: []Split{
				{Method: types.PaymentMethodCash, Amount: decimal.NewFromInt(100)},
				{Method: types.PaymentMethodCard, Amount: decimal.NewFromInt(107)},
			},
		},
		{
			name:        "SingleInstrument",
			targetTotal: "49.99",
			splits: []Split{
				{Method: types.PaymentMethodTransfer, Amount: decimal.RequireFromString("49.99")},
			},
		},
		{
			name:        "OneCentUnderWithinTolerance",
			targetTotal: "100.00",
			splits: []Split{
				{Method: types.PaymentMethodCash, Amount: decimal.RequireFromString("33.33")},
				{Method: types.PaymentMethodCard, Amount: decimal.RequireFromString("33.33")},
				{Method: types.PaymentMethodTransfer, Amount: decimal.RequireFromString("33.33")},
			},
		},
		{
			name:        "OneCentOverWithinTolerance",
			targetTotal: "100.00",
			splits: []Split{
				{Method: types.PaymentMethodCash, Amount: decimal.RequireFromString("50.00")},
				{Method: types.PaymentMethodCard, Amount: decimal.RequireFromString("50.01")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := Reconcile(decimal.RequireFromString(tt.targetTotal), tt.splits)
			assert.NoError(t, err)

			// The split comes back unchanged; reconciliation never adjusts
			// amounts.
			assert.Equal(t, len(tt.splits), len(validated))
			for i := range tt.splits {
				assert.Equal(t, tt.splits[i].Method, validated[i].Method)
				assert.True(t, validated[i].Amount.Equal(tt.splits[i].Amount))
			}
		})
	}
}

func TestReconcile_EmptySplit(t *testing.T) {
	_, err := Reconcile(decimal.NewFromInt(100), nil)
	assert.True(t, errors.Is(err, ierr.ErrEmptySplit))

	_, err = Reconcile(decimal.NewFromInt(100), []Split{})
	assert.True(t, errors.Is(err, ierr.ErrEmptySplit))
}

func TestReconcile_NonPositiveAmounts(t *testing.T) {
	_, err := Reconcile(decimal.NewFromInt(100), []Split{
		{Method: types.PaymentMethodCash, Amount: decimal.NewFromInt(100)},
		{Method: types.PaymentMethodCard, Amount: decimal.Zero},
	})
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))

	_, err = Reconcile(decimal.NewFromInt(100), []Split{
		{Method: types.PaymentMethodCash, Amount: decimal.NewFromInt(110)},
		{Method: types.PaymentMethodCard, Amount: decimal.NewFromInt(-10)},
	})
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))
}

func TestReconcile_NonPositiveTarget(t *testing.T) {
	splits := []Split{
		{Method: types.PaymentMethodCash, Amount: decimal.NewFromInt(1)},
	}

	_, err := Reconcile(decimal.Zero, splits)
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))

	_, err = Reconcile(decimal.NewFromInt(-5), splits)
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))
}

func TestReconcile_Mismatch(t *testing.T) {
	tests := []struct {
		name        string
		targetTotal string
		amounts     []string
	}{
		{
			name:        "SevenShort",
			targetTotal: "207",
			amounts:     []string{"100", "100"},
		},
		{
			name:        "TwoCentsOver",
			targetTotal: "100.00",
			amounts:     []string{"50.01", "50.01"},
		},
		{
			name:        "JustOutsideTolerance",
			targetTotal: "100.00",
			amounts:     []string{"100.011"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := make([]Split, len(tt.amounts))
			for i, amount := range tt.amounts {
				splits[i] = Split{
					Method: types.PaymentMethodCash,
					Amount: decimal.RequireFromString(amount),
				}
			}

			_, err := Reconcile(decimal.RequireFromString(tt.targetTotal), splits)
			assert.True(t, errors.Is(err, ierr.ErrSplitMismatch))
		})
	}
}

// TestReconcile_ValidationOrder pins the order of checks: an empty list wins
// over a bad target, and a non-positive amount wins over a sum mismatch.
func TestReconcile_ValidationOrder(t *testing.T) {
	_, err := Reconcile(decimal.Zero, nil)
	assert.True(t, errors.Is(err, ierr.ErrEmptySplit))

	_, err = Reconcile(decimal.NewFromInt(100), []Split{
		{Method: types.PaymentMethodCash, Amount: decimal.NewFromInt(-1)},
	})
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))
}

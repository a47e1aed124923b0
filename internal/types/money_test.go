package types

import (
	"testing"

	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestRoundToAmountPrecision_HalfUp pins the load-bearing rounding rule:
// round-half-up, not banker's rounding.
func TestRoundToAmountPrecision_HalfUp(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{
			name:     "HalfRoundsUp",
			amount:   "10.555",
			expected: "10.56",
		},
		{
			name:     "BelowHalfRoundsDown",
			amount:   "10.554",
			expected: "10.55",
		},
		{
			name:     "ExactHalfOnEvenRoundsUp",
			amount:   "10.545",
			expected: "10.55",
		},
		{
			name:     "ExactHalfOnOddRoundsUp",
			amount:   "10.535",
			expected: "10.54",
		},
		{
			name:     "AlreadyRoundedIsIdentity",
			amount:   "99.99",
			expected: "99.99",
		},
		{
			name:     "Zero",
			amount:   "0",
			expected: "0",
		},
		{
			name:     "SubCentRoundsToZero",
			amount:   "0.001",
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			expected := decimal.RequireFromString(tt.expected)

			rounded := RoundToAmountPrecision(amount)

			assert.True(t, rounded.Equal(expected),
				"expected %s, got %s", expected.String(), rounded.String())
		})
	}
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, ValidatePrice(decimal.Zero))
	assert.NoError(t, ValidatePrice(decimal.RequireFromString("199.99")))

	err := ValidatePrice(decimal.RequireFromString("-0.01"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ierr.ErrInvalidAmount))
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		wantErr  bool
	}{
		{name: "Zero", quantity: "0"},
		{name: "One", quantity: "1"},
		{name: "MaxQuantity", quantity: "999999"},
		{name: "Negative", quantity: "-1", wantErr: true},
		{name: "Fractional", quantity: "1.5", wantErr: true},
		{name: "AboveMax", quantity: "9999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity(decimal.RequireFromString(tt.quantity))
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ierr.ErrInvalidQuantity))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestPolicyConstants pins the policy constants the rest of the engine and
// its callers are written against.
func TestPolicyConstants(t *testing.T) {
	assert.Equal(t, int32(2), AmountPrecision)
	assert.Equal(t, int64(999999), MaxQuantity)
	assert.True(t, TaxRate.Equal(decimal.RequireFromString("0.15")))
	assert.True(t, PaymentSplitTolerance.Equal(decimal.RequireFromString("0.01")))
}

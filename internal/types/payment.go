package types

import (
	ierr "github.com/clinicore/clinicore/internal/errors"
)

// PaymentMethod identifies the instrument used for one part of a payment
// split.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// Validate checks that the method is one of the known instruments.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return nil
	default:
		return ierr.NewErrorf("invalid payment method: %s", m).
			WithHint("Payment method must be CASH, CARD or TRANSFER").
			Mark(ierr.ErrInvalidInput)
	}
}

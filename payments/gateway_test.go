package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharge(t *testing.T) {
	t.Run("captures a valid charge", func(t *testing.T) {
		ref, err := Charge(PaymentDetails{Amount: 500, Currency: "INR", Method: "UPI"})
		assert.NoError(t, err)
		assert.Equal(t, "sim_UPI_50000", ref)
	})

	t.Run("rejects a missing method", func(t *testing.T) {
		_, err := Charge(PaymentDetails{Amount: 100, Currency: "INR"})
		assert.ErrorIs(t, err, ErrMissingPaymentMethod)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, err := Charge(PaymentDetails{Amount: -5, Currency: "INR", Method: "Card"})
		assert.Error(t, err)
	})

	t.Run("allows a zero amount", func(t *testing.T) {
		_, err := Charge(PaymentDetails{Amount: 0, Currency: "INR", Method: "Card"})
		assert.NoError(t, err)
	})
}

package payments

import (
	"errors"
	"fmt"
	"log"
)

// The platform has no live gateway integration; charges settle synchronously.
// Charge stands in for the provider callback that would normally flip a
// transaction from Pending to Success.

var ErrMissingPaymentMethod = errors.New("payment method is required")

type PaymentDetails struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

// Charge validates the payment details and simulates a successful capture.
func Charge(details PaymentDetails) (string, error) {
	if details.Method == "" {
		return "", ErrMissingPaymentMethod
	}
	if details.Amount < 0 {
		return "", fmt.Errorf("invalid charge amount %.2f", details.Amount)
	}

	ref := fmt.Sprintf("sim_%s_%d", details.Method, int64(details.Amount*100))
	log.Printf("✅ Simulated %s charge of %.2f %s (%s)", details.Method, details.Amount, details.Currency, ref)
	return ref, nil
}

package stripepay

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Init sets the API key from the environment. Call once at startup.
func Init() {
	stripe.Key = os.Getenv("PAYMENT_GATEWAY_KEY")
}

// CreateIntent creates a card PaymentIntent for the given amount in minor
// currency units and returns the client secret.
func CreateIntent(amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// VerifyIntent checks the processor's own record of the charge before any
// state is mutated: the intent must exist, have succeeded, and match the
// amount the client claims to have paid.
func VerifyIntent(intentID string, amount int64) error {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return fmt.Errorf("payment intent lookup failed: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment intent %s not succeeded (status %s)", intentID, pi.Status)
	}
	if pi.Amount != amount {
		return fmt.Errorf("payment intent %s amount mismatch: charged %d, claimed %d", intentID, pi.Amount, amount)
	}
	return nil
}

// IntentVerifier lets handlers take the verification step as a value so tests
// can stub the processor.
type IntentVerifier func(intentID string, amount int64) error

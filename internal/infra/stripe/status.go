package stripe

import (
	"strings"

	"artisan-storefront/internal/domain/billing"

	stripego "github.com/stripe/stripe-go/v75"
)

// OrderStatus maps a checkout session's payment status onto an order status.
// Anything other than a settled payment stays pending until the customer
// finishes on Stripe's page.
func OrderStatus(s stripego.CheckoutSessionPaymentStatus) string {
	switch strings.TrimSpace(string(s)) {
	case string(stripego.CheckoutSessionPaymentStatusPaid),
		string(stripego.CheckoutSessionPaymentStatusNoPaymentRequired):
		return billing.StatusPaid
	default:
		return billing.StatusPending
	}
}

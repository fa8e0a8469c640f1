package stripewebhooks

import (
	"context"
	"fmt"

	"artisan-storefront/internal/domain/billing"
	infrastripe "artisan-storefront/internal/infra/stripe"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
)

func (h *Handler) handleCheckoutSessionCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	if infrastripe.OrderStatus(session.PaymentStatus) != billing.StatusPaid {
		// Delayed payment methods complete the session before the money arrives.
		h.Log.WithField("checkout_session", session.ID).Info("checkout completed, payment still pending")
		return nil
	}

	found, err := h.Orders.MarkPaid(ctx, infrastripe.Provider, session.ID)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	h.Log.WithFields(logrus.Fields{
		"checkout_session": session.ID,
		"matched":          found,
	}).Info("stripe checkout settled")
	return nil
}

package store

import (
	"context"
	"fmt"

	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/domain/billing"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
)

const (
	paymentSucceeded = "Payment successful! Thank you for your purchase."
	paymentFailed    = "Payment failed. Please try again."
)

// Pay settles the cart. With the default simulated payer this always ends
// with an empty cart, a success toast and the home page. An empty cart is
// never sent to the payer.
func (s *Store) Pay(ctx context.Context, form billing.CheckoutForm) (billing.Receipt, error) {
	var order billing.Order
	if err := s.do(ctx, func(st *State) {
		order = billing.Order{
			SessionID: s.sessionID,
			Customer:  form.FullName,
			Email:     form.Email,
			Address:   fmt.Sprintf("%s, %s %s", form.Address, form.City, form.Zip),
			TotalUSD:  st.Cart.Total(),
			Status:    billing.StatusPending,
		}
		for _, it := range st.Cart.Items() {
			order.Lines = append(order.Lines, billing.OrderLine{
				ArtworkID: it.ID,
				Title:     it.Title,
				UnitPrice: it.Price,
				Quantity:  it.Quantity,
			})
		}
	}); err != nil {
		return billing.Receipt{}, err
	}

	receipt := billing.Receipt{Provider: "none", Status: billing.StatusPaid}
	if len(order.Lines) > 0 {
		var err error
		receipt, err = s.payer.Pay(ctx, order)
		if err != nil {
			metrics.RecordCheckout(receipt.Provider, false)
			s.log.WithError(err).Error("payment failed")
			_ = s.do(context.WithoutCancel(ctx), func(st *State) {
				s.notify(st, paymentFailed, notify.SeverityError)
			})
			return billing.Receipt{}, fmt.Errorf("pay: %w", err)
		}
		metrics.RecordCheckout(receipt.Provider, true)

		order.Provider = receipt.Provider
		order.Status = receipt.Status
		if receipt.Reference != "" {
			ref := receipt.Reference
			order.ProviderRef = &ref
		}
		if err := s.orders.Record(ctx, &order); err != nil {
			s.log.WithError(err).Warn("could not record order")
		}
	}

	err := s.do(context.WithoutCancel(ctx), func(st *State) {
		st.Cart.Clear()
		s.notify(st, paymentSucceeded, notify.SeveritySuccess)
		st.navigate(nav.PageHome)
	})
	return receipt, err
}

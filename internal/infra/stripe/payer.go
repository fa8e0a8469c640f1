// Package stripe pays storefront orders through Stripe Checkout.
package stripe

import (
	"context"
	"errors"
	"fmt"

	"artisan-storefront/internal/domain/billing"

	stripego "github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

const Provider = "stripe"

var ErrNotConfigured = errors.New("stripe key not configured")

// Payer opens a one-off Checkout Session per order. Prices are whole
// dollars and go to Stripe in cents.
type Payer struct {
	AppURL string

	newSession func(*stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

func NewPayer(secretKey, appURL string) (*Payer, error) {
	if secretKey == "" {
		return nil, ErrNotConfigured
	}
	if appURL == "" {
		appURL = "http://localhost:5173"
	}
	sc := &checkoutsession.Client{B: stripego.GetBackend(stripego.APIBackend), Key: secretKey}
	return &Payer{AppURL: appURL, newSession: sc.New}, nil
}

func (p *Payer) Pay(ctx context.Context, order billing.Order) (billing.Receipt, error) {
	if len(order.Lines) == 0 {
		return billing.Receipt{Provider: Provider}, billing.ErrEmptyOrder
	}

	params := &stripego.CheckoutSessionParams{
		SuccessURL: stripego.String(p.AppURL + "/?checkout=success"),
		CancelURL:  stripego.String(p.AppURL + "/?checkout=canceled"),
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		LineItems:  lineItems(order.Lines),
	}
	params.AddMetadata("session_id", order.SessionID)
	if order.Email != "" {
		params.CustomerEmail = stripego.String(order.Email)
	}
	if order.SessionID != "" {
		params.ClientReferenceID = stripego.String(order.SessionID)
	}
	params.Context = ctx

	s, err := p.newSession(params)
	if err != nil {
		return billing.Receipt{Provider: Provider}, fmt.Errorf("create checkout session: %w", err)
	}

	return billing.Receipt{
		Provider:    Provider,
		Reference:   s.ID,
		RedirectURL: s.URL,
		Status:      OrderStatus(s.PaymentStatus),
	}, nil
}

func lineItems(lines []billing.OrderLine) []*stripego.CheckoutSessionLineItemParams {
	items := make([]*stripego.CheckoutSessionLineItemParams, 0, len(lines))
	for _, l := range lines {
		items = append(items, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency: stripego.String(string(stripego.CurrencyUSD)),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(l.Title),
				},
				UnitAmount: stripego.Int64(l.UnitPrice * 100),
			},
			Quantity: stripego.Int64(int64(l.Quantity)),
		})
	}
	return items
}

package billing

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrEmptyOrder = errors.New("order has no lines")

// Payer settles an order.
type Payer interface {
	Pay(ctx context.Context, order Order) (Receipt, error)
}

// SimulatedPayer accepts every order without contacting anyone.
type SimulatedPayer struct{}

func (SimulatedPayer) Pay(_ context.Context, _ Order) (Receipt, error) {
	return Receipt{Provider: "simulated", Status: StatusPaid}, nil
}

// Recorder keeps a history of paid carts.
type Recorder interface {
	Record(ctx context.Context, order *Order) error
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, *Order) error { return nil }

// GormOrders stores orders in the orders table.
type GormOrders struct {
	DB *gorm.DB
}

func (g GormOrders) Record(ctx context.Context, order *Order) error {
	return g.DB.WithContext(ctx).Create(order).Error
}

// ListBySession returns a session's orders, newest first.
func (g GormOrders) ListBySession(ctx context.Context, sessionID string) ([]Order, error) {
	var orders []Order
	err := g.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// MarkPaid settles the order a payment provider confirmed asynchronously.
// It reports false when no pending order carries ref.
func (g GormOrders) MarkPaid(ctx context.Context, provider, ref string) (bool, error) {
	res := g.DB.WithContext(ctx).Model(&Order{}).
		Where("provider = ? AND provider_ref = ? AND status = ?", provider, ref, StatusPending).
		Update("status", StatusPaid)
	return res.RowsAffected > 0, res.Error
}

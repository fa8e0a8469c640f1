package store

import (
	"context"
	"fmt"

	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/domain/cart"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/notify"
)

// AddToCart bumps the artwork's cart entry (or creates it) and announces it.
func (s *Store) AddToCart(ctx context.Context, artworkID int64) (cart.Item, error) {
	var (
		item cart.Item
		err  error
	)
	doErr := s.do(ctx, func(st *State) {
		art, ok := st.Catalog.Artwork(artworkID)
		if !ok {
			err = catalog.ErrArtworkNotFound
			return
		}
		item = st.Cart.Add(art)
		metrics.RecordCartAddition()
		s.notify(st, fmt.Sprintf("%s added to your bag!", art.Title), notify.SeveritySuccess)
	})
	if doErr != nil {
		return cart.Item{}, doErr
	}
	return item, err
}

// UpdateCartQuantity sets an entry's quantity; zero or less removes it.
func (s *Store) UpdateCartQuantity(ctx context.Context, artworkID int64, quantity int) error {
	return s.do(ctx, func(st *State) {
		st.Cart.SetQuantity(artworkID, quantity)
	})
}

func (s *Store) Cart(ctx context.Context) (cart.Cart, error) {
	var c cart.Cart
	err := s.do(ctx, func(st *State) {
		c = st.Cart.Clone()
	})
	return c, err
}

package store

import (
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/cart"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/favorites"
	"artisan-storefront/internal/domain/ids"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
	"artisan-storefront/internal/domain/users"
)

// State is everything one storefront session knows. Only the store loop touches it.
type State struct {
	Page         nav.Page
	ScrollOffset int

	SelectedArtworkID *int64
	SelectedArtistID  *int64

	Modal       nav.Modal
	Auth        access.State
	CurrentUser *users.CurrentUser

	Cart          cart.Cart
	Favorites     favorites.Set
	Notifications notify.Queue
	Catalog       *catalog.Catalog

	reviewIDs  ids.Sequence
	artworkIDs ids.Sequence
}

// navigate switches page and puts the scroll position back at the top.
func (st *State) navigate(p nav.Page) {
	st.Page = p
	st.ScrollOffset = 0
}

// Snapshot is a detached copy of State safe to read from any goroutine.
type Snapshot struct {
	Page         nav.Page
	ScrollOffset int

	SelectedArtwork *catalog.Artwork
	SelectedArtist  *catalog.Artist

	Modal       nav.Modal
	Auth        access.State
	CurrentUser *users.CurrentUser

	Cart          cart.Cart
	Favorites     favorites.Set
	Notifications []notify.Notification
	Catalog       *catalog.Catalog
}

func (st *State) snapshot() Snapshot {
	snap := Snapshot{
		Page:          st.Page,
		ScrollOffset:  st.ScrollOffset,
		Modal:         st.Modal,
		Auth:          st.Auth,
		Cart:          st.Cart.Clone(),
		Favorites:     st.Favorites.Clone(),
		Notifications: st.Notifications.Items(),
		Catalog:       st.Catalog.Clone(),
	}
	if st.CurrentUser != nil {
		u := *st.CurrentUser
		snap.CurrentUser = &u
	}
	if st.SelectedArtworkID != nil {
		if art, ok := st.Catalog.Artwork(*st.SelectedArtworkID); ok {
			snap.SelectedArtwork = &art
		}
	}
	if st.SelectedArtistID != nil {
		if artist, ok := st.Catalog.Artist(*st.SelectedArtistID); ok {
			snap.SelectedArtist = &artist
		}
	}
	return snap
}

// Policy is the capability set the header should offer.
func (s Snapshot) Policy() access.Policy {
	return access.ComputePolicy(s.Auth, s.CurrentUser)
}

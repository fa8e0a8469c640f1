package store

import (
	"context"

	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/nav"
)

func (s *Store) Navigate(ctx context.Context, page nav.Page) error {
	return s.do(ctx, func(st *State) {
		st.navigate(page)
	})
}

// SetScroll records how far the client has scrolled on the current page.
func (s *Store) SetScroll(ctx context.Context, offset int) error {
	if offset < 0 {
		offset = 0
	}
	return s.do(ctx, func(st *State) {
		st.ScrollOffset = offset
	})
}

// ViewDetails selects an artwork and opens its detail page.
func (s *Store) ViewDetails(ctx context.Context, artworkID int64) error {
	var err error
	doErr := s.do(ctx, func(st *State) {
		if _, ok := st.Catalog.Artwork(artworkID); !ok {
			err = catalog.ErrArtworkNotFound
			return
		}
		id := artworkID
		st.SelectedArtworkID = &id
		st.navigate(nav.PageDetails)
	})
	if doErr != nil {
		return doErr
	}
	return err
}

// ViewArtist selects an artist and opens their profile page.
func (s *Store) ViewArtist(ctx context.Context, artistID int64) error {
	var err error
	doErr := s.do(ctx, func(st *State) {
		if _, ok := st.Catalog.Artist(artistID); !ok {
			err = catalog.ErrArtistNotFound
			return
		}
		id := artistID
		st.SelectedArtistID = &id
		st.navigate(nav.PageArtistProfile)
	})
	if doErr != nil {
		return doErr
	}
	return err
}

func (s *Store) OpenModal(ctx context.Context, m nav.Modal) error {
	return s.do(ctx, func(st *State) {
		st.Modal = m
	})
}

func (s *Store) CloseModal(ctx context.Context) error {
	return s.OpenModal(ctx, nav.ModalNone)
}

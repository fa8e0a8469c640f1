package store

import (
	"context"
	"errors"
	"strings"

	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
)

var (
	ErrImageRequired = errors.New("please upload an image for the artwork")
	ErrLoginRequired = errors.New("login required")
)

// Uploaded works get these until the form learns to ask for them.
const (
	defaultMedium     = "Oil on Canvas"
	defaultDimensions = `24" x 36"`
	anonymousReviewer = "Anonymous"
)

// ToggleFavorite flips the artwork's membership in the favorites set and
// reports whether it is a favorite afterwards. Unknown IDs change nothing.
func (s *Store) ToggleFavorite(ctx context.Context, artworkID int64) (bool, error) {
	var fav bool
	err := s.do(ctx, func(st *State) {
		fav = st.Favorites.Toggle(artworkID, st.Catalog.Artwork)
	})
	return fav, err
}

func (s *Store) Favorites(ctx context.Context) ([]catalog.Artwork, error) {
	var out []catalog.Artwork
	err := s.do(ctx, func(st *State) {
		out = st.Favorites.Items()
	})
	return out, err
}

// PostReview appends a review signed with the current user's name.
func (s *Store) PostReview(ctx context.Context, artworkID int64, comment string) (catalog.Review, error) {
	var (
		review catalog.Review
		err    error
	)
	doErr := s.do(ctx, func(st *State) {
		author := anonymousReviewer
		if st.CurrentUser != nil && st.CurrentUser.Name != "" {
			author = st.CurrentUser.Name
		}
		review = catalog.Review{
			ID:      st.reviewIDs.Next(s.now()),
			User:    author,
			Comment: comment,
		}
		if err = st.Catalog.AppendReview(artworkID, review); err != nil {
			return
		}
		s.notify(st, "Review posted!", notify.SeveritySuccess)
	})
	if doErr != nil {
		return catalog.Review{}, doErr
	}
	return review, err
}

// Submission carries the upload form.
type Submission struct {
	Title       string
	Description string
	Category    catalog.Category
	Price       int64
	Type        catalog.ListingType
	Image       *media.Image
}

// SubmitArtwork prepends a new artwork owned by the current user and opens
// the gallery. Without an image nothing is submitted.
func (s *Store) SubmitArtwork(ctx context.Context, sub Submission) (catalog.Artwork, error) {
	if sub.Image == nil {
		return catalog.Artwork{}, ErrImageRequired
	}

	var (
		art catalog.Artwork
		err error
	)
	doErr := s.do(ctx, func(st *State) {
		if st.CurrentUser == nil {
			err = ErrLoginRequired
			return
		}
		listing := sub.Type
		if listing == "" {
			listing = catalog.ListingSale
		}
		art = catalog.Artwork{
			ID:          st.artworkIDs.Next(s.now()),
			ArtistID:    st.CurrentUser.ID,
			Title:       strings.TrimSpace(sub.Title),
			Price:       sub.Price,
			Image:       sub.Image.URL(),
			Description: sub.Description,
			Medium:      defaultMedium,
			Dimensions:  defaultDimensions,
			Category:    sub.Category,
			Type:        listing,
			Reviews:     []catalog.Review{},
		}
		st.Catalog.Prepend(art)
		s.notify(st, "Artwork uploaded!", notify.SeveritySuccess)
		st.navigate(nav.PageGallery)
	})
	if doErr != nil {
		return catalog.Artwork{}, doErr
	}
	return art, err
}

// Package views turns a store snapshot into the view models each page needs.
package views

import (
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/store"
)

// Options carries per-request view parameters that are not part of the session.
type Options struct {
	// Category filters the gallery; empty or "All" shows everything.
	Category string
}

// Render builds the view for the snapshot's current page. A details or
// artist profile page with nothing selected shows home, and so do the
// dashboards, which have no view of their own.
func Render(snap store.Snapshot, opts Options) View {
	policy := snap.Policy()
	v := View{
		Page:          snap.Page,
		ScrollOffset:  snap.ScrollOffset,
		Notifications: snap.Notifications,
		Header: Header{
			CartCount:      snap.Cart.Count(),
			FavoritesCount: snap.Favorites.Len(),
			User:           snap.CurrentUser,
			Auth:           policy.State,
			Capabilities:   policy.Capabilities,
			Modal:          snap.Modal,
		},
	}
	r := newRenderer(snap)

	switch snap.Page {
	case nav.PageDetails:
		if snap.SelectedArtwork == nil {
			v.Home = r.home()
			break
		}
		v.Detail = r.detail(*snap.SelectedArtwork)
	case nav.PageArtistProfile:
		if snap.SelectedArtist == nil {
			v.Home = r.home()
			break
		}
		v.ArtistProfile = r.artistProfile(*snap.SelectedArtist)
	case nav.PageGallery:
		v.Gallery = r.gallery(opts.Category)
	case nav.PageArtists:
		v.Artists = snap.Catalog.Artists()
	case nav.PageExhibitions:
		v.Exhibitions = snap.Catalog.Exhibitions()
	case nav.PageCart:
		v.Cart = r.cart()
	case nav.PageCheckout:
		v.Checkout = r.cart()
	case nav.PageUpload:
		v.Upload = &Upload{
			Categories: catalog.Categories,
			CanUpload:  access.Has(policy.Capabilities, access.CapUpload),
		}
	case nav.PageFavorites:
		v.Favorites = r.favorites()
	case nav.PageHome, nav.PageArtistDashboard, nav.PageBuyerDashboard:
		v.Home = r.home()
	default:
		v.Home = r.home()
	}
	return v
}

type renderer struct {
	snap        store.Snapshot
	canFavorite bool
}

func (r renderer) card(a catalog.Artwork) ArtCard {
	return ArtCard{
		ID:          a.ID,
		ArtistID:    a.ArtistID,
		ArtistName:  r.snap.Catalog.ArtistName(a.ArtistID),
		Title:       a.Title,
		Image:       a.Image,
		Category:    a.Category,
		Type:        a.Type,
		PriceLabel:  CardPrice(a),
		ActionLabel: ActionLabel(a),
		IsFavorite:  r.snap.Favorites.Contains(a.ID),
		CanFavorite: r.canFavorite,
	}
}

func (r renderer) cards(arts []catalog.Artwork) []ArtCard {
	out := make([]ArtCard, 0, len(arts))
	for _, a := range arts {
		out = append(out, r.card(a))
	}
	return out
}

func (r renderer) home() *Home {
	return &Home{Featured: r.cards(r.snap.Catalog.Featured())}
}

func (r renderer) gallery(category string) *Gallery {
	if category == "" {
		category = allCategories
	}
	return &Gallery{
		Categories: r.snap.Catalog.GalleryCategories(),
		Active:     category,
		Artworks:   r.cards(r.snap.Catalog.ByCategory(category)),
	}
}

func (r renderer) detail(a catalog.Artwork) *Detail {
	reviews := a.Reviews
	if reviews == nil {
		reviews = []catalog.Review{}
	}
	return &Detail{
		ArtCard:     r.card(a),
		Description: a.Description,
		Medium:      a.Medium,
		Dimensions:  a.Dimensions,
		DetailPrice: DetailPrice(a),
		Reviews:     reviews,
	}
}

func (r renderer) artistProfile(artist catalog.Artist) *ArtistProfile {
	return &ArtistProfile{
		Artist:        artist,
		Works:         r.cards(r.snap.Catalog.ByArtist(artist.ID)),
		RecentReviews: r.snap.Catalog.RecentArtistReviews(artist.ID),
	}
}

func (r renderer) cart() *CartPage {
	items := r.snap.Cart.Items()
	page := &CartPage{
		Lines:    make([]CartLine, 0, len(items)),
		Count:    r.snap.Cart.Count(),
		Subtotal: Money(r.snap.Cart.Total()),
		Shipping: freeShipping,
		Total:    Money(r.snap.Cart.Total()),
	}
	if len(items) == 0 {
		page.Message = emptyCartMessage
	}
	for _, it := range items {
		page.Lines = append(page.Lines, CartLine{
			ArtworkID:  it.ID,
			Title:      it.Title,
			ArtistName: r.snap.Catalog.ArtistName(it.ArtistID),
			Image:      it.Image,
			UnitPrice:  Money(it.Price),
			Quantity:   it.Quantity,
			LineTotal:  Money(it.LineTotal()),
		})
	}
	return page
}

func (r renderer) favorites() *Favorites {
	fav := &Favorites{Artworks: r.cards(r.snap.Favorites.Items())}
	if len(fav.Artworks) == 0 {
		fav.Message = emptyFavoritesMessage
	}
	return fav
}

func newRenderer(snap store.Snapshot) renderer {
	return renderer{snap: snap, canFavorite: access.Has(snap.Policy().Capabilities, access.CapFavorite)}
}

// Cards renders art cards for arts as seen from snap's session.
func Cards(snap store.Snapshot, arts []catalog.Artwork) []ArtCard {
	return newRenderer(snap).cards(arts)
}

func DetailOf(snap store.Snapshot, art catalog.Artwork) *Detail {
	return newRenderer(snap).detail(art)
}

func ProfileOf(snap store.Snapshot, artist catalog.Artist) *ArtistProfile {
	return newRenderer(snap).artistProfile(artist)
}

func CartOf(snap store.Snapshot) *CartPage {
	return newRenderer(snap).cart()
}

func FavoritesOf(snap store.Snapshot) *Favorites {
	return newRenderer(snap).favorites()
}

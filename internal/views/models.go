package views

import (
	"artisan-storefront/internal/domain/access"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/notify"
	"artisan-storefront/internal/domain/users"
)

const (
	emptyCartMessage      = "Your bag is empty."
	emptyFavoritesMessage = "You haven't favorited any artwork yet."
	freeShipping          = "Free"
	allCategories         = "All"
)

type ArtCard struct {
	ID          int64               `json:"id"`
	ArtistID    int64               `json:"artistId"`
	ArtistName  string              `json:"artistName"`
	Title       string              `json:"title"`
	Image       string              `json:"image"`
	Category    catalog.Category    `json:"category"`
	Type        catalog.ListingType `json:"type"`
	PriceLabel  string              `json:"priceLabel"`
	ActionLabel string              `json:"actionLabel"`
	IsFavorite  bool                `json:"isFavorite"`
	// CanFavorite is false for anonymous visitors, who get no heart button.
	CanFavorite bool `json:"canFavorite"`
}

type Detail struct {
	ArtCard
	Description string           `json:"description"`
	Medium      string           `json:"medium"`
	Dimensions  string           `json:"dimensions"`
	DetailPrice string           `json:"detailPrice"`
	Reviews     []catalog.Review `json:"reviews"`
}

type ArtistProfile struct {
	Artist        catalog.Artist         `json:"artist"`
	Works         []ArtCard              `json:"works"`
	RecentReviews []catalog.ArtistReview `json:"recentReviews"`
}

type Home struct {
	Featured []ArtCard `json:"featured"`
}

type Gallery struct {
	Categories []string  `json:"categories"`
	Active     string    `json:"active"`
	Artworks   []ArtCard `json:"artworks"`
}

type CartLine struct {
	ArtworkID  int64  `json:"artworkId"`
	Title      string `json:"title"`
	ArtistName string `json:"artistName"`
	Image      string `json:"image"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"lineTotal"`
}

type CartPage struct {
	Lines    []CartLine `json:"lines"`
	Count    int        `json:"count"`
	Subtotal string     `json:"subtotal"`
	Shipping string     `json:"shipping"`
	Total    string     `json:"total"`
	Message  string     `json:"message,omitempty"`
}

type Upload struct {
	Categories []catalog.Category `json:"categories"`
	CanUpload  bool               `json:"canUpload"`
}

type Favorites struct {
	Artworks []ArtCard `json:"artworks"`
	Message  string    `json:"message,omitempty"`
}

type Header struct {
	CartCount      int                 `json:"cartCount"`
	FavoritesCount int                 `json:"favoritesCount"`
	User           *users.CurrentUser  `json:"user,omitempty"`
	Auth           access.State        `json:"auth"`
	Capabilities   []access.Capability `json:"capabilities"`
	Modal          nav.Modal           `json:"modal,omitempty"`
}

// View is the whole screen for one request. Exactly one page field is set.
type View struct {
	Page          nav.Page              `json:"page"`
	ScrollOffset  int                   `json:"scrollOffset"`
	Header        Header                `json:"header"`
	Notifications []notify.Notification `json:"notifications"`

	Home          *Home                `json:"home,omitempty"`
	Gallery       *Gallery             `json:"gallery,omitempty"`
	Artists       []catalog.Artist     `json:"artists,omitempty"`
	Exhibitions   []catalog.Exhibition `json:"exhibitions,omitempty"`
	Cart          *CartPage            `json:"cart,omitempty"`
	Checkout      *CartPage            `json:"checkout,omitempty"`
	Upload        *Upload              `json:"upload,omitempty"`
	Favorites     *Favorites           `json:"favorites,omitempty"`
	Detail        *Detail              `json:"detail,omitempty"`
	ArtistProfile *ArtistProfile       `json:"artistProfile,omitempty"`
}

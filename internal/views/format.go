package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"artisan-storefront/internal/domain/catalog"
)

var printer = message.NewPrinter(language.English)

// Money renders whole dollars with thousands separators, e.g. "$1,200".
func Money(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// CardPrice is the price shown on an art card.
func CardPrice(a catalog.Artwork) string {
	if a.IsAuction() {
		return "Start: " + Money(a.Price)
	}
	return Money(a.Price)
}

// DetailPrice is the price shown on the artwork detail page.
func DetailPrice(a catalog.Artwork) string {
	if a.IsAuction() {
		return "Starting Bid: " + Money(a.Price)
	}
	return Money(a.Price)
}

func ActionLabel(a catalog.Artwork) string {
	if a.IsAuction() {
		return "Place Bid"
	}
	return "Add to Bag"
}

package cart

import "artisan-storefront/internal/domain/catalog"

// Item is an artwork snapshot plus the quantity pending checkout.
type Item struct {
	catalog.Artwork
	Quantity int `json:"quantity"`
}

func (i Item) LineTotal() int64 { return i.Price * int64(i.Quantity) }

// Cart keeps one entry per artwork ID; quantities stay positive while present.
type Cart struct {
	items []Item
}

// Add increments the quantity of an existing entry or appends a new one with quantity 1.
func (c *Cart) Add(art catalog.Artwork) Item {
	for i := range c.items {
		if c.items[i].ID == art.ID {
			c.items[i].Quantity++
			return c.items[i]
		}
	}
	item := Item{Artwork: art.Clone(), Quantity: 1}
	c.items = append(c.items, item)
	return item
}

// SetQuantity removes the entry when quantity <= 0, otherwise overwrites it.
// Unknown IDs are ignored.
func (c *Cart) SetQuantity(artworkID int64, quantity int) {
	if quantity <= 0 {
		kept := c.items[:0]
		for _, it := range c.items {
			if it.ID != artworkID {
				kept = append(kept, it)
			}
		}
		c.items = kept
		return
	}
	for i := range c.items {
		if c.items[i].ID == artworkID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		it.Artwork = it.Artwork.Clone()
		out = append(out, it)
	}
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Count is the header badge number: the sum of all quantities.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// Clone returns an independent copy for read-only snapshots.
func (c *Cart) Clone() Cart {
	return Cart{items: c.Items()}
}

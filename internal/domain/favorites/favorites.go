package favorites

import "artisan-storefront/internal/domain/catalog"

// Lookup resolves an artwork from the full catalog.
type Lookup func(id int64) (catalog.Artwork, bool)

// Set is the user's bookmarked artworks, keyed by artwork ID.
type Set struct {
	items []catalog.Artwork
}

func (s *Set) Contains(id int64) bool {
	for _, a := range s.items {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Toggle removes id when present, otherwise adds the catalog artwork.
// It reports whether the artwork is a favorite afterwards; unknown IDs leave the set unchanged.
func (s *Set) Toggle(id int64, lookup Lookup) bool {
	if s.Contains(id) {
		kept := s.items[:0]
		for _, a := range s.items {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		s.items = kept
		return false
	}
	art, ok := lookup(id)
	if !ok {
		return false
	}
	s.items = append(s.items, art.Clone())
	return true
}

func (s *Set) Items() []catalog.Artwork {
	out := make([]catalog.Artwork, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a.Clone())
	}
	return out
}

func (s *Set) Len() int { return len(s.items) }

func (s *Set) Clone() Set { return Set{items: s.Items()} }

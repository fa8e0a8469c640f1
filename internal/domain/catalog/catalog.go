package catalog

import "errors"

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrArtistNotFound  = errors.New("artist not found")
)

const (
	featuredCount      = 6
	profileReviewCount = 4
)

// Catalog holds artists, artworks and exhibitions for one session.
// It is not safe for concurrent use; the owning store serialises access.
type Catalog struct {
	artists     []Artist
	artworks    []Artwork
	exhibitions []Exhibition
}

func New(artists []Artist, artworks []Artwork, exhibitions []Exhibition) *Catalog {
	c := &Catalog{
		artists:     append([]Artist(nil), artists...),
		artworks:    make([]Artwork, 0, len(artworks)),
		exhibitions: append([]Exhibition(nil), exhibitions...),
	}
	for _, a := range artworks {
		c.artworks = append(c.artworks, a.Clone())
	}
	return c
}

// Clone deep-copies the catalog for read-only snapshots.
func (c *Catalog) Clone() *Catalog {
	return New(c.artists, c.artworks, c.exhibitions)
}

func (c *Catalog) Artists() []Artist { return append([]Artist(nil), c.artists...) }

func (c *Catalog) Exhibitions() []Exhibition { return append([]Exhibition(nil), c.exhibitions...) }

// Artworks returns snapshots in catalog order (newest submissions first).
func (c *Catalog) Artworks() []Artwork {
	out := make([]Artwork, 0, len(c.artworks))
	for _, a := range c.artworks {
		out = append(out, a.Clone())
	}
	return out
}

func (c *Catalog) Artwork(id int64) (Artwork, bool) {
	for _, a := range c.artworks {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return Artwork{}, false
}

func (c *Catalog) Artist(id int64) (Artist, bool) {
	for _, a := range c.artists {
		if a.ID == id {
			return a, true
		}
	}
	return Artist{}, false
}

// ArtistByName returns the first artist with the given display name.
func (c *Catalog) ArtistByName(name string) (Artist, bool) {
	for _, a := range c.artists {
		if a.Name == name {
			return a, true
		}
	}
	return Artist{}, false
}

// ArtistName degrades to UnknownArtist for dangling references.
func (c *Catalog) ArtistName(id int64) string {
	if a, ok := c.Artist(id); ok {
		return a.Name
	}
	return UnknownArtist
}

// Prepend puts a newly submitted artwork at the head of the catalog.
func (c *Catalog) Prepend(a Artwork) {
	if a.Reviews == nil {
		a.Reviews = []Review{}
	}
	c.artworks = append([]Artwork{a.Clone()}, c.artworks...)
}

// AppendReview adds r to the artwork's review sequence. Existing reviews are never touched.
func (c *Catalog) AppendReview(artworkID int64, r Review) error {
	for i := range c.artworks {
		if c.artworks[i].ID == artworkID {
			c.artworks[i].Reviews = append(c.artworks[i].Reviews, r)
			return nil
		}
	}
	return ErrArtworkNotFound
}

func (c *Catalog) Featured() []Artwork {
	all := c.Artworks()
	if len(all) > featuredCount {
		all = all[:featuredCount]
	}
	return all
}

// GalleryCategories is "All" followed by the distinct categories in catalog order.
func (c *Catalog) GalleryCategories() []string {
	out := []string{"All"}
	seen := map[Category]bool{}
	for _, a := range c.artworks {
		if seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, string(a.Category))
	}
	return out
}

// ByCategory filters artworks; "All" or an empty label returns everything.
func (c *Catalog) ByCategory(label string) []Artwork {
	if label == "" || label == "All" {
		return c.Artworks()
	}
	out := []Artwork{}
	for _, a := range c.artworks {
		if string(a.Category) == label {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (c *Catalog) ByArtist(artistID int64) []Artwork {
	out := []Artwork{}
	for _, a := range c.artworks {
		if a.ArtistID == artistID {
			out = append(out, a.Clone())
		}
	}
	return out
}

type ArtistReview struct {
	Review
	ArtTitle string `json:"artTitle"`
}

// RecentArtistReviews flattens the reviews of an artist's works, capped for the profile header.
func (c *Catalog) RecentArtistReviews(artistID int64) []ArtistReview {
	out := []ArtistReview{}
	for _, a := range c.artworks {
		if a.ArtistID != artistID {
			continue
		}
		for _, r := range a.Reviews {
			out = append(out, ArtistReview{Review: r, ArtTitle: a.Title})
			if len(out) == profileReviewCount {
				return out
			}
		}
	}
	return out
}

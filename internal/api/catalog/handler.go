package catalog

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	domain "artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/views"

	"github.com/gin-gonic/gin"
)

// ListArtworks returns art cards, optionally filtered by ?category=.
func ListArtworks(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	category := c.DefaultQuery("category", "All")
	c.JSON(http.StatusOK, gin.H{
		"categories": snap.Catalog.GalleryCategories(),
		"active":     category,
		"artworks":   views.Cards(snap, snap.Catalog.ByCategory(category)),
	})
}

func GetArtwork(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	art, found := snap.Catalog.Artwork(id)
	if !found {
		respond.Error(c, domain.ErrArtworkNotFound)
		return
	}
	c.JSON(http.StatusOK, views.DetailOf(snap, art))
}

// SelectArtwork opens the artwork's detail page.
func SelectArtwork(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := middleware.CurrentStore(c).ViewDetails(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	renderView(c)
}

func ListArtists(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": snap.Catalog.Artists()})
}

func GetArtist(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	artist, found := snap.Catalog.Artist(id)
	if !found {
		respond.Error(c, domain.ErrArtistNotFound)
		return
	}
	c.JSON(http.StatusOK, views.ProfileOf(snap, artist))
}

// SelectArtist opens the artist's profile page.
func SelectArtist(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := middleware.CurrentStore(c).ViewArtist(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	renderView(c)
}

func ListExhibitions(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"exhibitions": snap.Catalog.Exhibitions()})
}

func renderView(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.Render(snap, views.Options{}))
}

package favorites

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/views"

	"github.com/gin-gonic/gin"
)

func List(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.FavoritesOf(snap))
}

// Toggle flips the artwork in or out of the favorites. Unknown artworks are
// ignored and reported as not favorite.
func Toggle(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	fav, err := middleware.CurrentStore(c).ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworkId": id, "isFavorite": fav})
}

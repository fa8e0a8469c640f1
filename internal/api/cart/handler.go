package cart

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/views"

	"github.com/gin-gonic/gin"
)

func GetCart(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.CartOf(snap))
}

func AddItem(c *gin.Context) {
	var body struct {
		ArtworkID int64 `json:"artworkId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid artworkId"})
		return
	}

	item, err := middleware.CurrentStore(c).AddToCart(c.Request.Context(), body.ArtworkID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"item":          gin.H{"artworkId": item.ID, "title": item.Title, "quantity": item.Quantity},
		"cart":          views.CartOf(snap),
		"notifications": snap.Notifications,
	})
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func UpdateItem(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid quantity"})
		return
	}

	if err := middleware.CurrentStore(c).UpdateCartQuantity(c.Request.Context(), id, *body.Quantity); err != nil {
		respond.Error(c, err)
		return
	}
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.CartOf(snap))
}

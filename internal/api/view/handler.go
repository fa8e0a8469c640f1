package view

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/views"

	"github.com/gin-gonic/gin"
)

// GetView renders the session's current page. ?category= filters the gallery.
func GetView(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.Render(snap, views.Options{Category: c.Query("category")}))
}

// Navigate switches page. Unknown page tags land on home.
func Navigate(c *gin.Context) {
	var body struct {
		Page string `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid page"})
		return
	}
	if err := middleware.CurrentStore(c).Navigate(c.Request.Context(), nav.ParsePage(body.Page)); err != nil {
		respond.Error(c, err)
		return
	}
	GetView(c)
}

func Scroll(c *gin.Context) {
	var body struct {
		Offset int `json:"offset"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid offset"})
		return
	}
	if err := middleware.CurrentStore(c).SetScroll(c.Request.Context(), body.Offset); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
